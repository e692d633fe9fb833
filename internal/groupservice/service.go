// Package groupservice manages business logic layer of groups.
package groupservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
)

// Ledger provides remote ledger access needed by group service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package groupservice
type Ledger interface {
	CreateGroup(ctx context.Context, name string) (domain.Group, error)
	AddUserToGroup(ctx context.Context, arg domain.EnrollUserParams) (domain.User, error)
}

// Service facilitates group service layer logic.
type Service struct {
	ledger Ledger
}

// New returns group service struct to manage group bussines logic.
func New(l Ledger) *Service {
	return &Service{ledger: l}
}

// Provision creates a group and enrolls the given members one at a time.
//
// Members are enrolled strictly in input order. The first enrollment failure
// stops the sequence; members enrolled before that point are kept on the
// remote service and returned in the partial result alongside the error.
// The name lists are positionally aligned and not length-checked.
func (s *Service) Provision(ctx context.Context, name string, firstNames, lastNames, emails []string) (domain.CreateGroupResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.CreateGroupResult

	group, err := s.ledger.CreateGroup(ctx, name)
	if err != nil {
		l.Info().Err(err).Str("group_name", name).Send()
		return result, wrap(err, "failed to create group")
	}

	result.GroupID = group.ID
	result.GroupName = group.Name

	for i, firstName := range firstNames {
		arg := domain.EnrollUserParams{
			GroupID:   group.ID,
			FirstName: firstName,
			LastName:  lastNames[i],
			Email:     emails[i],
		}

		user, err := s.ledger.AddUserToGroup(ctx, arg)
		if err != nil {
			l.Info().Err(err).Int64("group_id", group.ID).Str("member", firstName+" "+arg.LastName).Send()
			return result, wrap(err, fmt.Sprintf("failed to add user %s %s", firstName, arg.LastName))
		}

		result.MembersAdded = append(result.MembersAdded, domain.Member{
			ID:    user.ID,
			Name:  firstName + " " + arg.LastName,
			Email: arg.Email,
		})
	}

	result.Message = "Group created successfully"

	return result, nil
}

// wrap prefixes err's message while keeping its remote error kind, or its
// identity for non-remote errors.
func wrap(err error, prefix string) error {
	var re *domain.RemoteError
	if errors.As(err, &re) {
		return &domain.RemoteError{Kind: re.Kind, Message: prefix + ": " + re.Message}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
