// Package expenseservice manages business logic layer of expenses.
package expenseservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/currencypkg"
)

const dateLayout = "2006-01-02"

// Ledger provides remote ledger access needed by expense service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package expenseservice
type Ledger interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	Friends(ctx context.Context) ([]domain.Friend, error)
	ExpensesBetween(ctx context.Context, datedAfter, datedBefore string) ([]domain.Expense, error)
	GroupByID(ctx context.Context, id int64) (domain.Group, error)
	CreateExpense(ctx context.Context, draft domain.ExpenseDraft) (int64, error)
}

// Service facilitates expense service layer logic.
type Service struct {
	ledger Ledger
}

// New returns expense service struct to manage expense bussines logic.
func New(l Ledger) *Service {
	return &Service{ledger: l}
}

// identityMap builds the per-call mapping from first name to ledger user id
// covering the authenticated account and its friends. Duplicate first names
// collapse to one entry, last write wins.
func (s *Service) identityMap(ctx context.Context) (domain.IdentityMap, error) {
	me, err := s.ledger.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	friends, err := s.ledger.Friends(ctx)
	if err != nil {
		return nil, err
	}

	ids := domain.IdentityMap{me.FirstName: me.ID}
	for _, f := range friends {
		ids[f.FirstName] = f.ID
	}

	return ids, nil
}

// allocate computes equal owed shares for the participants and assigns the
// full paid share to paidBy.
//
// The owed share is total divided by the requested participant count,
// computed once before unresolved names are dropped, with no remainder
// correction. Participants missing from ids go to the dropped list instead
// of the shares.
func allocate(total decimal.Decimal, paidBy string, participants []string, ids domain.IdentityMap) ([]domain.ExpenseShare, []string) {
	owed := total.Div(decimal.NewFromInt(int64(len(participants))))

	var (
		shares  []domain.ExpenseShare
		dropped []string
	)

	for _, name := range participants {
		id, ok := ids[name]
		if !ok {
			dropped = append(dropped, name)
			continue
		}

		paid := "0"
		if name == paidBy {
			paid = total.String()
		}

		shares = append(shares, domain.ExpenseShare{
			UserID:    id,
			PaidShare: paid,
			OwedShare: owed.String(),
		})
	}

	return shares, dropped
}

// Create splits amount equally among the participants, assigns the full paid
// share to paidBy and submits the resulting draft to the ledger.
func (s *Service) Create(ctx context.Context, participants []string, paidBy, amount, description string) (domain.CreateExpenseResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.CreateExpenseResult

	total, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	ids, err := s.identityMap(ctx)
	if err != nil {
		return result, err
	}

	shares, dropped := allocate(total, paidBy, participants, ids)
	if len(dropped) > 0 {
		l.Info().Strs("dropped", dropped).Msg("participants not found in identity mapping")
	}

	draft := domain.ExpenseDraft{
		Cost:         total.String(),
		Description:  description,
		CurrencyCode: currencypkg.ExpenseCurrency,
		Shares:       shares,
		Dropped:      dropped,
	}

	id, err := s.ledger.CreateExpense(ctx, draft)
	if err != nil {
		return result, err
	}

	result = domain.CreateExpenseResult{
		Message:   "Expense added successfully!",
		ExpenseID: id,
		Dropped:   dropped,
	}

	return result, nil
}

// dateWindow returns the inclusive query window covering the last numDays
// days. The upper bound is tomorrow so that same-day expenses pass the
// remote service's exclusive date filter.
func dateWindow(today time.Time, numDays int32) (datedAfter, datedBefore string) {
	datedAfter = today.AddDate(0, 0, -int(numDays)).Format(dateLayout)
	datedBefore = today.AddDate(0, 0, 1).Format(dateLayout)

	return datedAfter, datedBefore
}

// ListLastNDays returns expenses of the last numDays days enriched with
// their group names.
func (s *Service) ListLastNDays(ctx context.Context, numDays int32) ([]domain.ExpenseDetail, error) {
	l := zerolog.Ctx(ctx)

	datedAfter, datedBefore := dateWindow(time.Now(), numDays)

	expenses, err := s.ledger.ExpensesBetween(ctx, datedAfter, datedBefore)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ExpenseDetail, 0, len(expenses))

	for _, exp := range expenses {
		detail := domain.ExpenseDetail{
			ID:           exp.ID,
			Description:  exp.Description,
			Cost:         exp.Cost,
			Details:      exp.Details,
			CreatedBy:    exp.CreatedBy.FirstName,
			Date:         exp.Date,
			CurrencyCode: exp.CurrencyCode,
			GroupName:    domain.NonGroupExpenseName,
		}

		if exp.GroupID != 0 {
			group, err := s.ledger.GroupByID(ctx, exp.GroupID)
			if err != nil {
				l.Info().Err(err).Int64("group_id", exp.GroupID).Msg("group lookup failed")
			} else if group.Name != "" {
				detail.GroupName = group.Name
			}
		}

		details = append(details, detail)
	}

	return details, nil
}
