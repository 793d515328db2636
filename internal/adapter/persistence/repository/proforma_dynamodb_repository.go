package repository

import (
	"context"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase/interfaces"
	"healthathome/pkg/dateonly"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProformasTableName = "proformas"

type proformaItem struct {
	ID                string   `dynamodbav:"id"`
	PacienteNombre    string   `dynamodbav:"paciente_nombre"`
	PacienteDocumento string   `dynamodbav:"paciente_documento,omitempty"`
	Direccion         string   `dynamodbav:"direccion,omitempty"`
	CodigosExamen     []string `dynamodbav:"codigos_examen"`
	FechaVisita       string   `dynamodbav:"fecha_visita"`
	HoraVisita        string   `dynamodbav:"hora_visita"`
	Total             string   `dynamodbav:"total"`
	Status            string   `dynamodbav:"status"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// ProformaDynamoRepository persists Proforma entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// fecha_visita is stored as a noon-UTC timestamp and converted back to a
// local calendar date on read, so the stored instant never drifts a day.
type ProformaDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	dates     *dateonly.Normalizer
}

var _ interfaces.IProformaRepository = (*ProformaDynamoRepository)(nil)

func NewProformaDynamoRepository(ddb DynamoAPI, tableName string, dates *dateonly.Normalizer) *ProformaDynamoRepository {
	if dates == nil {
		dates = dateonly.Default()
	}
	return &ProformaDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProformasTableName),
		dates:     dates,
	}
}

func (r *ProformaDynamoRepository) Create(ctx context.Context, p entities.Proforma) (entities.Proforma, error) {
	av, err := attributevalue.MarshalMap(toProformaItem(p))
	if err != nil {
		return entities.Proforma{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proforma{}, err
	}
	return p, nil
}

func (r *ProformaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proforma, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proforma{}, err
	}
	return r.decode(out.Item)
}

// List scans the table. An empty status returns every proforma.
func (r *ProformaDynamoRepository) List(ctx context.Context, status entities.ProformaStatus) ([]entities.Proforma, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var out []entities.Proforma
	for {
		page, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			p, err := r.decode(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

// UpdateStatus moves the proforma from one status to another. It returns a
// zero proforma when the stored status is no longer `from`.
func (r *ProformaDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProformaStatus) (entities.Proforma, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// UpdateExams replaces the exam selection and total of a pending proforma.
// Totals are stored rounded to cents.
func (r *ProformaDynamoRepository) UpdateExams(ctx context.Context, id string, codigos []string, total decimal.Decimal) (entities.Proforma, error) {
	codes, err := attributevalue.Marshal(codigos)
	if err != nil {
		return entities.Proforma{}, err
	}
	return r.update(ctx, id, entities.ProformaStatusPendiente, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #codigos = :codigos, #total = :total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":codigos":    codes,
			":total":      &types.AttributeValueMemberS{Value: total.Round(2).String()},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#codigos":    "codigos_examen",
			"#total":      "total",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProformaDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.ProformaStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Proforma, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Proforma{}, nil
		}
		return entities.Proforma{}, err
	}
	return r.decode(out.Attributes)
}

func (r *ProformaDynamoRepository) decode(raw map[string]types.AttributeValue) (entities.Proforma, error) {
	if len(raw) == 0 {
		return entities.Proforma{}, nil
	}
	var it proformaItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Proforma{}, err
	}
	return fromProformaItem(it, r.dates), nil
}

func toProformaItem(p entities.Proforma) proformaItem {
	return proformaItem{
		ID:                p.ID,
		PacienteNombre:    p.PacienteNombre,
		PacienteDocumento: p.PacienteDocumento,
		Direccion:         p.Direccion,
		CodigosExamen:     p.CodigosExamen,
		FechaVisita:       dateonly.ToNoonUTC(p.FechaVisita),
		HoraVisita:        p.HoraVisita,
		Total:             p.Total.Round(2).String(),
		Status:            string(p.Status),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromProformaItem(it proformaItem, dates *dateonly.Normalizer) entities.Proforma {
	total, _ := decimal.NewFromString(it.Total)
	return entities.Proforma{
		ID:                it.ID,
		PacienteNombre:    it.PacienteNombre,
		PacienteDocumento: it.PacienteDocumento,
		Direccion:         it.Direccion,
		CodigosExamen:     it.CodigosExamen,
		FechaVisita:       dates.ToLocalDateString(it.FechaVisita),
		HoraVisita:        it.HoraVisita,
		Total:             total,
		Status:            entities.ProformaStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
