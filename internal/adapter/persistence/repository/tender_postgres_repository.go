package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tender_finder/internal/domain/entities"
	"tender_finder/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// tenderRecord maps the relational `tenders` table.
type tenderRecord struct {
	ID                          int64      `gorm:"primaryKey;autoIncrement"`
	Province                    *string    `gorm:"size:100"`
	Location                    *string    `gorm:"size:200"`
	TenderDeadline              *time.Time `gorm:"type:date"`
	Status                      *string    `gorm:"size:100"`
	Details                     *string    `gorm:"type:text"`
	ExpensiveRatio              *float64   `gorm:"default:0"`
	MidrangeRatio               *float64   `gorm:"default:0"`
	SocialRatio                 *float64   `gorm:"default:0"`
	Municipality                *string    `gorm:"size:100"`
	Winner                      *string    `gorm:"size:200"`
	NumberOfProperties          *int
	PublicationDate             *time.Time `gorm:"type:date"`
	TenderLongitude             *float64
	TenderLatitude              *float64
	CenterMunicipalityLongitude *float64
	CenterMunicipalityLatitude  *float64
}

func (tenderRecord) TableName() string {
	return "tenders"
}

// TenderPostgresRepository reads Tender entities from PostgreSQL through GORM.
type TenderPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.ITenderRepository = (*TenderPostgresRepository)(nil)

func NewTenderPostgresRepository(db *gorm.DB) *TenderPostgresRepository {
	return &TenderPostgresRepository{db: db}
}

func (r *TenderPostgresRepository) ListAll(ctx context.Context) ([]entities.Tender, error) {
	var rows []tenderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenders: %w", err)
	}

	tenders := make([]entities.Tender, 0, len(rows))
	for _, row := range rows {
		tenders = append(tenders, fromTenderRecord(row))
	}
	return tenders, nil
}

func (r *TenderPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Tender, error) {
	var row tenderRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Tender{}, nil
	}
	if err != nil {
		return entities.Tender{}, fmt.Errorf("failed to get tender %d: %w", id, err)
	}
	return fromTenderRecord(row), nil
}

func fromTenderRecord(row tenderRecord) entities.Tender {
	return entities.Tender{
		ID:                          row.ID,
		Province:                    deref(row.Province),
		Municipality:                deref(row.Municipality),
		Location:                    deref(row.Location),
		Winner:                      deref(row.Winner),
		Status:                      deref(row.Status),
		Details:                     deref(row.Details),
		TenderDeadline:              dateOnly(row.TenderDeadline),
		PublicationDate:             dateOnly(row.PublicationDate),
		ExpensiveRatio:              deref(row.ExpensiveRatio),
		MidrangeRatio:               deref(row.MidrangeRatio),
		SocialRatio:                 deref(row.SocialRatio),
		NumberOfProperties:          row.NumberOfProperties,
		TenderLatitude:              row.TenderLatitude,
		TenderLongitude:             row.TenderLongitude,
		CenterMunicipalityLatitude:  row.CenterMunicipalityLatitude,
		CenterMunicipalityLongitude: row.CenterMunicipalityLongitude,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// dateOnly drops the time-of-day and zone the driver attaches to DATE columns.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
