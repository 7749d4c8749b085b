// Package memberrepo provides the GORM persistence of members, the data transfer
// objects the order repository preloads, and the address mapping shared with
// deliveries.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting members.
// Names are unique.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for member entities.
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO is the embedded column set of an address.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// FromAddress maps an address value object to its columns.
func FromAddress(addr kernel.Address) AddressDTO {
	return AddressDTO{
		City:    addr.City(),
		Street:  addr.Street(),
		Zipcode: addr.Zipcode(),
	}
}

// ToAddress rebuilds an address value object from its columns.
func ToAddress(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.City, dto.Street, dto.Zipcode)
}

func fromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:      m.ID().Bytes(),
		Name:    m.Name(),
		Address: FromAddress(m.Address()),
	}
}

// ToDomain converts a loaded member row into the domain entity.
func ToDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := ToAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, addr)
}
