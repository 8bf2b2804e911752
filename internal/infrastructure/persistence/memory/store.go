package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// Store is an in-memory implementation of port.LoanRepository and
// port.RepaymentRepository, used by tests and local development. A single
// mutex serializes all writes, which matches the transactional guarantees of
// the PostgreSQL implementation: receipt uniqueness and the loan version
// check are decided atomically.
type Store struct {
	mu           sync.RWMutex
	loans        map[string]model.Loan
	repayments   map[string]model.Repayment
	receiptIndex map[string]string
	byLoan       map[string][]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		loans:        make(map[string]model.Loan),
		repayments:   make(map[string]model.Repayment),
		receiptIndex: make(map[string]string),
		byLoan:       make(map[string][]string),
	}
}

// Save upserts a loan under the same optimistic-locking contract as the
// PostgreSQL repository.
func (s *Store) Save(_ context.Context, loan model.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(loan)
}

func (s *Store) saveLocked(loan model.Loan) error {
	existing, ok := s.loans[loan.ID()]
	if !ok {
		s.loans[loan.ID()] = loan
		return nil
	}
	if existing.Version() != loan.Version() {
		return valueobject.ErrVersionConflict
	}
	s.loans[loan.ID()] = bumpVersion(loan)
	return nil
}

// FindByID retrieves a loan by id.
func (s *Store) FindByID(_ context.Context, id string) (model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loan, ok := s.loans[id]
	if !ok {
		return model.Loan{}, valueobject.ErrLoanNotFound
	}
	return loan, nil
}

// FindByBorrowerID retrieves all loans for a borrower.
func (s *Store) FindByBorrowerID(_ context.Context, borrowerID string) ([]model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLoans(func(l model.Loan) bool {
		return l.BorrowerID() == borrowerID
	}), nil
}

// FindOpenByBorrowerID retrieves the borrower's loans still in flight.
func (s *Store) FindOpenByBorrowerID(_ context.Context, borrowerID string) ([]model.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLoans(func(l model.Loan) bool {
		return l.BorrowerID() == borrowerID && !l.Status().IsTerminal()
	}), nil
}

// Record stores the repayment and the updated loan atomically. A duplicate
// receipt reference leaves the store untouched.
func (s *Store) Record(_ context.Context, rep model.Repayment, loan model.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.receiptIndex[rep.ReceiptRef()]; exists {
		return valueobject.ErrDuplicateReceipt
	}
	if err := s.saveLocked(loan); err != nil {
		return err
	}

	s.repayments[rep.ID()] = rep
	s.receiptIndex[rep.ReceiptRef()] = rep.ID()
	s.byLoan[rep.LoanID()] = append(s.byLoan[rep.LoanID()], rep.ID())
	return nil
}

// FindByReceiptRef looks up a repayment by receipt reference.
func (s *Store) FindByReceiptRef(_ context.Context, receiptRef string) (model.Repayment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.receiptIndex[receiptRef]
	if !ok {
		return model.Repayment{}, false, nil
	}
	return s.repayments[id], true, nil
}

// ListByLoanID returns all repayments for a loan in recording order.
func (s *Store) ListByLoanID(_ context.Context, loanID string) ([]model.Repayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byLoan[loanID]
	reps := make([]model.Repayment, 0, len(ids))
	for _, id := range ids {
		reps = append(reps, s.repayments[id])
	}
	return reps, nil
}

func (s *Store) filterLoans(keep func(model.Loan) bool) []model.Loan {
	var loans []model.Loan
	for _, loan := range s.loans {
		if keep(loan) {
			loans = append(loans, loan)
		}
	}
	sort.Slice(loans, func(i, j int) bool {
		return loans[i].CreatedAt().After(loans[j].CreatedAt())
	})
	return loans
}

// bumpVersion mirrors the version increment the SQL upsert performs.
func bumpVersion(loan model.Loan) model.Loan {
	return model.ReconstructLoan(
		loan.ID(), loan.BorrowerID(),
		loan.Principal(), loan.InterestRatePercent(),
		loan.TermDays(), loan.Purpose(),
		loan.Status(), loan.AppliedAt(),
		loan.ApprovedAt(), loan.DisbursedAt(), loan.DueDate(),
		loan.RepaidAmount(), loan.CreditScore(), loan.RiskLevel(), loan.DecisionReason(),
		loan.Version()+1, loan.CreatedAt(), loan.UpdatedAt(),
	)
}
