package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrRegisterMemberCommandIsNotConstructed = errors.New(
	"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
)

// RegisterMemberCommand represents a customer joining the shop.
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

func NewRegisterMemberCommand(memberID kernel.UUID, name string, address kernel.Address) (RegisterMemberCommand, error) {
	cmd := RegisterMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	return cmd, nil
}

func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

func (c RegisterMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c RegisterMemberCommand) Name() string {
	return c.name
}

func (c RegisterMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *RegisterMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *RegisterMemberCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
