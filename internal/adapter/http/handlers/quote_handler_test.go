package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"healthathome/internal/adapter/http/handlers/mocks"
	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	t.Run("codes and inline exams together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))
		r := newTestRouter()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		w := perform(r, http.MethodPost, "/v1/quotes/preview", `{"codigos":["A"],"examenes":[{"codigo":"A","precio":"10"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewByCodes(gomock.Any(), []string{"A", "ZZZ"}).Return(entities.ExamQuote{}, fmt.Errorf("%w: ZZZ", usecase.ErrExamNotFound))

		w := perform(r, http.MethodPost, "/v1/quotes/preview", `{"codigos":["A","ZZZ"]}`)
		if w.Code != http.StatusNotFound || errorCode(t, w) != "EXAM_NOT_FOUND" {
			t.Fatalf("expected 404 EXAM_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("by codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewByCodes(gomock.Any(), []string{"A"}).Return(entities.ExamQuote{
			Examenes:   []entities.LaboratoryExam{{Codigo: "A", Precio: "S/ 100.00"}},
			TotalFinal: decimal.NewFromInt(240),
		}, nil)

		w := perform(r, http.MethodPost, "/v1/quotes/preview", `{"codigos":["A"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_final"] != 240.0 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("inline exams skip the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newTestRouter()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewExams(gomock.Any()).DoAndReturn(func(exams []entities.LaboratoryExam) entities.ExamQuote {
			if len(exams) != 2 || exams[0].Codigo != "B" {
				t.Fatalf("request order lost: %+v", exams)
			}
			return entities.ExamQuote{Examenes: exams}
		})

		w := perform(r, http.MethodPost, "/v1/quotes/preview", `{"examenes":[{"codigo":"B","precio":"20"},{"codigo":"A","precio":"10"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
