package services

import (
	"context"
	"sort"
	"strings"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/policy"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

// PaymentService is the per-date-per-group payment ledger. It records a
// single payer per (date, group) and computes the running "who paid least"
// ranking for a group.
type PaymentService struct {
	payments *repository.PaymentRepository
	users    *repository.UserRepository
}

// NewPaymentService creates a payment ledger over the given repositories.
func NewPaymentService(payments *repository.PaymentRepository, users *repository.UserRepository) *PaymentService {
	return &PaymentService{payments: payments, users: users}
}

// RecordPayment upserts the payer for (date, group). Admins may set any
// payer. A non-admin must belong to the target group and can only record a
// payment for themselves: an empty actor defaults to the payer, an explicit
// actor that differs from the payer is rejected.
func (s *PaymentService) RecordPayment(ctx context.Context, date, group, payer, actor, role string) error {
	group = strings.TrimSpace(group)
	payer = strings.TrimSpace(payer)
	actor = strings.TrimSpace(actor)
	if group == "" || payer == "" {
		return apperrors.Validation("missing or invalid payment data")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	payerUser := findUser(users, payer)
	if payerUser == nil {
		return apperrors.NotFound("user not found")
	}
	if payerUser.Group != group {
		return apperrors.Validation("the selected user does not belong to the group")
	}

	if !policy.IsAdmin(role) {
		if actor == "" {
			actor = payer
		}
		if _, err := policy.EnsureGroupAccess(users, group, actor); err != nil {
			return err
		}
		if actor != payer {
			return apperrors.Forbidden("cannot record a payment for another user")
		}
	}

	payments, err := s.payments.All(ctx)
	if err != nil {
		return err
	}
	if payments[date] == nil {
		payments[date] = map[string]string{}
	}
	payments[date][group] = payer

	return s.payments.SaveAll(ctx, payments)
}

// GetPaymentStatus reports a group's payment state: the payer for the
// requested date (nil when none is recorded), the running totals ranking
// (count descending, ties by username ascending) and the chronological log
// (most recent date first). Totals are seeded at zero for every current
// group member; historical payers who have since left the group still count.
// Non-admin callers must identify themselves and must belong to the group.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, group, date, username, role string) (models.PaymentStatus, error) {
	group = strings.TrimSpace(group)
	username = strings.TrimSpace(username)
	if group == "" {
		return models.PaymentStatus{}, apperrors.Validation("missing required group")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return models.PaymentStatus{}, err
	}

	if !policy.IsAdmin(role) {
		if username == "" {
			return models.PaymentStatus{}, apperrors.Validation("missing required user")
		}
		if _, err := policy.EnsureGroupAccess(users, group, username); err != nil {
			return models.PaymentStatus{}, err
		}
	}

	payments, err := s.payments.All(ctx)
	if err != nil {
		return models.PaymentStatus{}, err
	}

	counts := map[string]int{}
	for _, user := range users {
		if user.Group == group {
			counts[user.Username] = 0
		}
	}

	log := []models.PaymentLogEntry{}
	for paymentDate, groups := range payments {
		payer := strings.TrimSpace(groups[group])
		if payer == "" {
			continue
		}
		counts[payer]++
		log = append(log, models.PaymentLogEntry{Date: paymentDate, Username: payer})
	}

	sort.Slice(log, func(i, j int) bool {
		return log[i].Date > log[j].Date
	})

	totals := make([]models.PaymentTotal, 0, len(counts))
	for member, count := range counts {
		totals = append(totals, models.PaymentTotal{Username: member, Count: count})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Count != totals[j].Count {
			return totals[i].Count > totals[j].Count
		}
		return totals[i].Username < totals[j].Username
	})

	var payerForDate *models.PayerRecord
	if recorded := strings.TrimSpace(payments[date][group]); recorded != "" {
		payerForDate = &models.PayerRecord{Username: recorded, Date: date}
	}

	return models.PaymentStatus{
		Group:  group,
		Date:   date,
		Payer:  payerForDate,
		Totals: totals,
		Log:    log,
	}, nil
}

func findUser(users []models.User, username string) *models.User {
	for i := range users {
		if users[i].Username == username {
			return &users[i]
		}
	}
	return nil
}
