package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/pkg/dateonly"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func lima(t *testing.T) *dateonly.Normalizer {
	t.Helper()
	n, err := dateonly.NewForZone("America/Lima")
	if err != nil {
		t.Fatalf("NewForZone: %v", err)
	}
	return n
}

func sampleProforma() entities.Proforma {
	now := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)
	return entities.Proforma{
		ID:             "pf-1",
		PacienteNombre: "Ana Quispe",
		CodigosExamen:  []string{"A", "B", "A"},
		FechaVisita:    "2024-06-10",
		HoraVisita:     "08:30",
		Total:          decimal.RequireFromString("540.00"),
		Status:         entities.ProformaStatusPendiente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestProformaItemMapping(t *testing.T) {
	it := toProformaItem(sampleProforma())
	if it.FechaVisita != "2024-06-10T12:00:00.000Z" {
		t.Fatalf("fecha_visita must be stored at noon UTC, got %s", it.FechaVisita)
	}

	for _, zone := range []string{"America/Lima", "UTC", "Asia/Tokyo", "America/Los_Angeles"} {
		n, err := dateonly.NewForZone(zone)
		if err != nil {
			t.Fatalf("NewForZone(%s): %v", zone, err)
		}
		back := fromProformaItem(it, n)
		if back.FechaVisita != "2024-06-10" {
			t.Fatalf("%s: expected 2024-06-10, got %s", zone, back.FechaVisita)
		}
		if !back.Total.Equal(decimal.NewFromInt(540)) || len(back.CodigosExamen) != 3 {
			t.Fatalf("%s: unexpected %+v", zone, back)
		}
	}
}

func TestProformaItemMapping_TotalRoundedToCents(t *testing.T) {
	p := sampleProforma()
	p.Total = decimal.RequireFromString("204.0000000000000003")
	if got := toProformaItem(p).Total; got != "204" {
		t.Fatalf("expected total stored as 204, got %s", got)
	}
	p.Total = decimal.RequireFromString("171.428571428571")
	if got := toProformaItem(p).Total; got != "171.43" {
		t.Fatalf("expected total stored as 171.43, got %s", got)
	}
}

func TestProformaDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
			}
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberS).Value != "pf-1" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewProformaDynamoRepository(ddb, "", lima(t))

	if _, err := repo.Create(ctx, sampleProforma()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetByID(ctx, "pf-1")
	if err != nil || got.FechaVisita != "2024-06-10" || got.HoraVisita != "08:30" {
		t.Fatalf("unexpected %+v %v", got, err)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero proforma, got %+v %v", missing, err)
	}
}

func TestProformaDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	av, err := attributevalue.MarshalMap(toProformaItem(sampleProforma()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	t.Run("status filter", func(t *testing.T) {
		ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if aws.ToString(in.FilterExpression) != "#status = :status" {
				t.Fatalf("expected status filter")
			}
			if in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value != "pendiente" {
				t.Fatalf("unexpected filter value")
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{av}}, nil
		}}
		got, err := NewProformaDynamoRepository(ddb, "", lima(t)).List(ctx, entities.ProformaStatusPendiente)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected %v %v", got, err)
		}
	})

	t.Run("no filter", func(t *testing.T) {
		ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if in.FilterExpression != nil {
				t.Fatalf("unexpected filter")
			}
			return &dynamodb.ScanOutput{}, nil
		}}
		got, err := NewProformaDynamoRepository(ddb, "", lima(t)).List(ctx, "")
		if err != nil || len(got) != 0 {
			t.Fatalf("unexpected %v %v", got, err)
		}
	})
}

func TestProformaDynamoRepository_ConditionalUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("status update is conditional on the previous status", func(t *testing.T) {
		approved := sampleProforma()
		approved.Status = entities.ProformaStatusAprobada
		av, _ := attributevalue.MarshalMap(toProformaItem(approved))

		ddb := &fakeDynamo{update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :expected" {
				t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
			}
			if in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value != "pendiente" ||
				in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value != "aprobada" {
				t.Fatalf("unexpected values %v", in.ExpressionAttributeValues)
			}
			if in.ExpressionAttributeNames["#status"] != "status" {
				t.Fatalf("missing #status name")
			}
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		}}
		got, err := NewProformaDynamoRepository(ddb, "", lima(t)).UpdateStatus(ctx, "pf-1", entities.ProformaStatusPendiente, entities.ProformaStatusAprobada)
		if err != nil || got.Status != entities.ProformaStatusAprobada {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})

	t.Run("lost condition yields zero proforma", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		got, err := NewProformaDynamoRepository(ddb, "", lima(t)).UpdateExams(ctx, "pf-1", []string{"A"}, decimal.NewFromInt(264))
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero proforma, got %+v %v", got, err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		if _, err := NewProformaDynamoRepository(ddb, "", lima(t)).UpdateExams(ctx, "pf-1", []string{"A"}, decimal.NewFromInt(264)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("exams update rounds the total to cents", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if got := in.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value; got != "204" {
				t.Fatalf("expected 204, got %s", got)
			}
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		total := decimal.RequireFromString("204.0000000000000003")
		if _, err := NewProformaDynamoRepository(ddb, "", lima(t)).UpdateExams(ctx, "pf-1", []string{"A"}, total); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exams update writes codes and total", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if in.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value != "264" {
				t.Fatalf("unexpected total")
			}
			if _, ok := in.ExpressionAttributeValues[":codigos"].(*types.AttributeValueMemberL); !ok {
				t.Fatalf("codes must be a list")
			}
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		if _, err := NewProformaDynamoRepository(ddb, "", lima(t)).UpdateExams(ctx, "pf-1", []string{"A"}, decimal.NewFromInt(264)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
