package document

import (
	"context"
	"fmt"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type DocumentServiceImpl struct {
	db *database.DB
	document.Repository
}

func NewDocumentService(db *database.DB, repo document.Repository) document.Service {
	return &DocumentServiceImpl{
		db:         db,
		Repository: repo,
	}
}

// Emit implements document.Service. The insert and the supersede of prior
// rows for the same (driver, period, type) happen in one transaction, so a
// reader never sees two current documents for the same slot.
func (s *DocumentServiceImpl) Emit(ctx context.Context, req document.EmitRequest) (*document.Document, error) {
	total := 0
	for _, item := range req.LineItems {
		total += item.Amount
	}

	doc := &document.Document{
		CompanyID:  req.CompanyID,
		DriverID:   req.DriverID,
		Year:       req.Year,
		Month:      req.Month,
		Type:       req.Type,
		LineItems:  req.LineItems,
		Total:      total,
		TotalHours: req.TotalHours,
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.Repository.Create(txCtx, doc); err != nil {
			return err
		}
		return s.Repository.SupersedePrior(txCtx, req.CompanyID, req.DriverID, req.Year, req.Month, req.Type, doc.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to emit document: %w", err)
	}

	return doc, nil
}

// ListPeriod implements document.Service.
func (s *DocumentServiceImpl) ListPeriod(ctx context.Context, year, month int) ([]document.DocumentResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	documents, err := s.Repository.ListPeriod(ctx, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, document.DocumentResponse{
			ID:         d.ID,
			DriverID:   d.DriverID,
			Year:       d.Year,
			Month:      d.Month,
			Type:       string(d.Type),
			LineItems:  d.LineItems,
			Total:      d.Total,
			TotalHours: d.TotalHours,
			Superseded: d.Superseded,
			CreatedAt:  d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}
