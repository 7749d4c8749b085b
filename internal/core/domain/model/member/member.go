package member

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrMemberIsNotConstructed is returned when validating a zero-value Member.
	ErrMemberIsNotConstructed = errs.NewValueIsRequiredError("member must be created via NewMember or RestoreMember")

	// ErrMemberAlreadyExists is returned when registering a name that is taken.
	ErrMemberAlreadyExists = errors.New("member already exists")
)

// Member is a customer of the shop.
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewMember registers a new member. The name must be non-blank.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Seoul", "Teheran-ro 5", "06100")
//	m, err := member.NewMember(kernel.NewUUID(), "kim", addr)
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember rebuilds a member loaded from storage.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Address() kernel.Address {
	return m.address
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
