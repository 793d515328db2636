package repository

import (
	"context"
	"fmt"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExamsTableName = "lab_exams"
	// BatchGetItem accepts at most 100 keys per request.
	batchGetLimit   = 100
	batchGetRetries = 5
)

type examItem struct {
	Codigo          string `dynamodbav:"codigo"`
	Nombre          string `dynamodbav:"nombre"`
	Precio          string `dynamodbav:"precio"`
	Categoria       string `dynamodbav:"categoria,omitempty"`
	Descripcion     string `dynamodbav:"descripcion,omitempty"`
	TiempoResultado string `dynamodbav:"tiempo_resultado,omitempty"`
	Preparacion     string `dynamodbav:"preparacion,omitempty"`
	Activo          bool   `dynamodbav:"activo"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ExamDynamoRepository persists the laboratory exam catalog in DynamoDB.
//
// Table requirements:
//   - PK: codigo (string)
type ExamDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IExamRepository = (*ExamDynamoRepository)(nil)

func NewExamDynamoRepository(ddb DynamoAPI, tableName string) *ExamDynamoRepository {
	return &ExamDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultExamsTableName),
	}
}

func (r *ExamDynamoRepository) Create(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	av, err := attributevalue.MarshalMap(toExamItem(e))
	if err != nil {
		return entities.LaboratoryExam{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#codigo)"),
		ExpressionAttributeNames: map[string]string{
			"#codigo": "codigo",
		},
	})
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	return e, nil
}

// Update replaces every attribute but codigo and created_at. A missing exam
// yields a zero value.
func (r *ExamDynamoRepository) Update(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
	it := toExamItem(e)
	expr := "SET #nombre = :nombre, #precio = :precio, #categoria = :categoria, #descripcion = :descripcion, " +
		"#tiempo_resultado = :tiempo_resultado, #preparacion = :preparacion, #activo = :activo, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":nombre":           &types.AttributeValueMemberS{Value: it.Nombre},
		":precio":           &types.AttributeValueMemberS{Value: it.Precio},
		":categoria":        &types.AttributeValueMemberS{Value: it.Categoria},
		":descripcion":      &types.AttributeValueMemberS{Value: it.Descripcion},
		":tiempo_resultado": &types.AttributeValueMemberS{Value: it.TiempoResultado},
		":preparacion":      &types.AttributeValueMemberS{Value: it.Preparacion},
		":activo":           &types.AttributeValueMemberBOOL{Value: it.Activo},
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if !e.UpdatedAt.IsZero() {
		vals[":updated_at"] = &types.AttributeValueMemberS{Value: it.UpdatedAt}
	}
	names := map[string]string{
		"#codigo":           "codigo",
		"#nombre":           "nombre",
		"#precio":           "precio",
		"#categoria":        "categoria",
		"#descripcion":      "descripcion",
		"#tiempo_resultado": "tiempo_resultado",
		"#preparacion":      "preparacion",
		"#activo":           "activo",
		"#updated_at":       "updated_at",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       examKey(e.Codigo),
		ConditionExpression:       aws.String("attribute_exists(#codigo)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.LaboratoryExam{}, nil
		}
		return entities.LaboratoryExam{}, err
	}
	return decodeExam(out.Attributes)
}

func (r *ExamDynamoRepository) GetByCode(ctx context.Context, codigo string) (entities.LaboratoryExam, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            examKey(codigo),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	return decodeExam(out.Item)
}

// GetByCodes fetches the given codes in batches. Missing codes are simply
// absent from the result, which is unordered.
func (r *ExamDynamoRepository) GetByCodes(ctx context.Context, codigos []string) ([]entities.LaboratoryExam, error) {
	out := make([]entities.LaboratoryExam, 0, len(codigos))
	for start := 0; start < len(codigos); start += batchGetLimit {
		end := min(start+batchGetLimit, len(codigos))

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, c := range codigos[start:end] {
			keys = append(keys, examKey(c))
		}
		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}

		for attempt := 0; len(request) > 0; attempt++ {
			if attempt == batchGetRetries {
				return nil, fmt.Errorf("batch get %s: unprocessed keys after %d attempts", r.tableName, attempt)
			}
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range res.Responses[r.tableName] {
				e, err := decodeExam(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, e)
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *ExamDynamoRepository) List(ctx context.Context) ([]entities.LaboratoryExam, error) {
	var out []entities.LaboratoryExam
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			e, err := decodeExam(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

// Delete removes the exam and returns what was stored, or a zero value when
// nothing was there.
func (r *ExamDynamoRepository) Delete(ctx context.Context, codigo string) (entities.LaboratoryExam, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          examKey(codigo),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.LaboratoryExam{}, err
	}
	return decodeExam(out.Attributes)
}

func examKey(codigo string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"codigo": &types.AttributeValueMemberS{Value: codigo},
	}
}

func decodeExam(raw map[string]types.AttributeValue) (entities.LaboratoryExam, error) {
	if len(raw) == 0 {
		return entities.LaboratoryExam{}, nil
	}
	var it examItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.LaboratoryExam{}, err
	}
	return fromExamItem(it), nil
}

func toExamItem(e entities.LaboratoryExam) examItem {
	return examItem{
		Codigo:          e.Codigo,
		Nombre:          e.Nombre,
		Precio:          e.Precio,
		Categoria:       e.Categoria,
		Descripcion:     e.Descripcion,
		TiempoResultado: e.TiempoResultado,
		Preparacion:     e.Preparacion,
		Activo:          e.Activo,
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
	}
}

func fromExamItem(it examItem) entities.LaboratoryExam {
	return entities.LaboratoryExam{
		Codigo:          it.Codigo,
		Nombre:          it.Nombre,
		Precio:          it.Precio,
		Categoria:       it.Categoria,
		Descripcion:     it.Descripcion,
		TiempoResultado: it.TiempoResultado,
		Preparacion:     it.Preparacion,
		Activo:          it.Activo,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
