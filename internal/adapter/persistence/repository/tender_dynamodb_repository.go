package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"tender_finder/internal/domain/entities"
	"tender_finder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTendersTableName = "tenders"

// TenderDynamoAPI is the part of *dynamodb.Client the tender repository needs.
type TenderDynamoAPI interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type tenderItem struct {
	ID                          int64    `dynamodbav:"id"`
	Province                    string   `dynamodbav:"province,omitempty"`
	Municipality                string   `dynamodbav:"municipality,omitempty"`
	Location                    string   `dynamodbav:"location,omitempty"`
	Winner                      string   `dynamodbav:"winner,omitempty"`
	Status                      string   `dynamodbav:"status,omitempty"`
	Details                     string   `dynamodbav:"details,omitempty"`
	TenderDeadline              string   `dynamodbav:"tender_deadline,omitempty"`
	PublicationDate             string   `dynamodbav:"publication_date,omitempty"`
	ExpensiveRatio              float64  `dynamodbav:"expensive_ratio"`
	MidrangeRatio               float64  `dynamodbav:"midrange_ratio"`
	SocialRatio                 float64  `dynamodbav:"social_ratio"`
	NumberOfProperties          *int     `dynamodbav:"number_of_properties,omitempty"`
	TenderLatitude              *float64 `dynamodbav:"tender_latitude,omitempty"`
	TenderLongitude             *float64 `dynamodbav:"tender_longitude,omitempty"`
	CenterMunicipalityLatitude  *float64 `dynamodbav:"center_municipality_latitude,omitempty"`
	CenterMunicipalityLongitude *float64 `dynamodbav:"center_municipality_longitude,omitempty"`
}

// TenderDynamoRepository reads Tender entities from DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Dates are stored as YYYY-MM-DD strings.
type TenderDynamoRepository struct {
	ddb       TenderDynamoAPI
	tableName string
}

var _ interfaces.ITenderRepository = (*TenderDynamoRepository)(nil)

func NewTenderDynamoRepository(ddb TenderDynamoAPI) *TenderDynamoRepository {
	return &TenderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENDERS_TABLE", defaultTendersTableName),
	}
}

func (r *TenderDynamoRepository) ListAll(ctx context.Context) ([]entities.Tender, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var tenders []entities.Tender
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenders: %w", err)
		}
		for _, raw := range out.Items {
			var it tenderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tender: %w", err)
			}
			tenders = append(tenders, fromTenderItem(it))
		}
	}

	log.Printf("[tender][dynamodb] scanned %d tenders table=%s", len(tenders), r.tableName)
	return tenders, nil
}

func (r *TenderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Tender, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		return entities.Tender{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tender{}, nil
	}

	var it tenderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tender{}, err
	}
	return fromTenderItem(it), nil
}

func fromTenderItem(it tenderItem) entities.Tender {
	return entities.Tender{
		ID:                          it.ID,
		Province:                    it.Province,
		Municipality:                it.Municipality,
		Location:                    it.Location,
		Winner:                      it.Winner,
		Status:                      it.Status,
		Details:                     it.Details,
		TenderDeadline:              parseDate(it.TenderDeadline),
		PublicationDate:             parseDate(it.PublicationDate),
		ExpensiveRatio:              it.ExpensiveRatio,
		MidrangeRatio:               it.MidrangeRatio,
		SocialRatio:                 it.SocialRatio,
		NumberOfProperties:          it.NumberOfProperties,
		TenderLatitude:              it.TenderLatitude,
		TenderLongitude:             it.TenderLongitude,
		CenterMunicipalityLatitude:  it.CenterMunicipalityLatitude,
		CenterMunicipalityLongitude: it.CenterMunicipalityLongitude,
	}
}

// parseDate accepts a bare date or a full RFC3339 timestamp; anything else is null.
func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	if d, err := time.Parse(entities.DateLayout, v); err == nil {
		return &d
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		d := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}
	return nil
}
