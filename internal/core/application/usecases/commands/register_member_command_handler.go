package commands

import (
	"context"

	"shop/internal/core/domain/model/member"
)

// RegisterMemberCommandHandler registers members, rejecting duplicate names
// with member.ErrMemberAlreadyExists.
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	exists, err := memberRepo.ExistsByName(ctx, m.Name())
	if err != nil {
		return err
	}
	if exists {
		return member.ErrMemberAlreadyExists
	}

	if err = memberRepo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
