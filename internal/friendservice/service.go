// Package friendservice manages business logic layer of friends.
package friendservice

import (
	"context"

	"github.com/go-petr/pet-split/internal/domain"
)

// Ledger provides remote ledger access needed by friend service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package friendservice
type Ledger interface {
	Friends(ctx context.Context) ([]domain.Friend, error)
}

// Service facilitates friend service layer logic.
type Service struct {
	ledger Ledger
}

// New returns friend service struct to manage friend bussines logic.
func New(l Ledger) *Service {
	return &Service{ledger: l}
}

// List returns every friend with the amount of its first balance entry, or
// "0" for friends with no outstanding balance.
func (s *Service) List(ctx context.Context) ([]domain.FriendBalance, error) {
	friends, err := s.ledger.Friends(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]domain.FriendBalance, 0, len(friends))

	for _, f := range friends {
		name := f.FirstName
		if f.LastName != "" {
			name += " " + f.LastName
		}

		balance := "0"
		if len(f.Balances) > 0 {
			balance = f.Balances[0].Amount
		}

		list = append(list, domain.FriendBalance{
			Name:    name,
			ID:      f.ID,
			Balance: balance,
		})
	}

	return list, nil
}
