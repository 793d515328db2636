package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthathome/internal/adapter/http/handlers/mocks"
	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestExamHandler_CreateExam(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewExamHandler(mocks.NewMockIExamUseCase(ctrl))
		r := newTestRouter()
		r.POST("/v1/exams", h.CreateExam)

		w := perform(r, http.MethodPost, "/v1/exams", `{"codigo":"HEM01"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_EXAM_INPUT" {
			t.Fatalf("expected 400 INVALID_EXAM_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.POST("/v1/exams", h.CreateExam)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaboratoryExam{}, usecase.ErrExamAlreadyExists)

		w := perform(r, http.MethodPost, "/v1/exams", `{"codigo":"HEM01","nombre":"Hemograma","precio":"35"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.POST("/v1/exams", h.CreateExam)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, e entities.LaboratoryExam) (entities.LaboratoryExam, error) {
			if e.Codigo != "HEM01" || !e.Activo {
				t.Fatalf("unexpected exam %+v", e)
			}
			e.Precio = "S/ 35.00"
			return e, nil
		})

		w := perform(r, http.MethodPost, "/v1/exams", `{"codigo":"HEM01","nombre":"Hemograma","precio":"35"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["precio"] != "S/ 35.00" || body["precio_valor"] != 35.0 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestExamHandler_ReadUpdateDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.GET("/v1/exams/:codigo", h.GetExam)

		uc.EXPECT().GetByCode(gomock.Any(), "X").Return(entities.LaboratoryExam{}, usecase.ErrExamNotFound)

		w := perform(r, http.MethodGet, "/v1/exams/X", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "EXAM_NOT_FOUND" {
			t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.GET("/v1/exams", h.ListExams)

		uc.EXPECT().List(gomock.Any(), "Bioquimica").Return([]entities.LaboratoryExam{{Codigo: "GLU"}, {Codigo: "COL"}}, nil)

		w := perform(r, http.MethodGet, "/v1/exams?categoria=Bioquimica", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/exams/:codigo", h.UpdateExam)

		uc.EXPECT().Update(gomock.Any(), "HEM01", gomock.Any()).Return(entities.LaboratoryExam{}, fmt.Errorf("%w: negative", usecase.ErrInvalidExamPrice))

		w := perform(r, http.MethodPut, "/v1/exams/HEM01", `{"nombre":"Hemograma","precio":"-1"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_PRICE" {
			t.Fatalf("expected 400 INVALID_PRICE, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.DELETE("/v1/exams/:codigo", h.DeleteExam)

		uc.EXPECT().Delete(gomock.Any(), "HEM01").Return(nil)

		if w := perform(r, http.MethodDelete, "/v1/exams/HEM01", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func multipartUpload(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/exams/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestExamHandler_ImportExams(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewExamHandler(mocks.NewMockIExamUseCase(ctrl))
		r := newTestRouter()
		r.POST("/v1/exams/import", h.ImportExams)

		w := perform(r, http.MethodPost, "/v1/exams/import", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewExamHandler(mocks.NewMockIExamUseCase(ctrl))
		r := newTestRouter()
		r.POST("/v1/exams/import", h.ImportExams)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "catalog.txt", "codigo,nombre,precio\n"))
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_CATALOG_FILE" {
			t.Fatalf("expected 400 INVALID_CATALOG_FILE, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("csv rows reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.POST("/v1/exams/import", h.ImportExams)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, rows []entities.CatalogRow) ([]entities.ImportRowResult, error) {
			if len(rows) != 2 || rows[0].Codigo != "GLU" || rows[1].Row != 3 {
				t.Fatalf("unexpected rows %+v", rows)
			}
			return []entities.ImportRowResult{
				{Row: 2, Codigo: "GLU", OK: true},
				{Row: 3, Codigo: "BAD", Reason: "invalid exam precio"},
			}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "catalog.csv", "codigo,nombre,precio\nGLU,Glucosa,S/ 15.00\nBAD,Roto,abc\n"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["imported"] != 1.0 || body["rejected"] != 1.0 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExamUseCase(ctrl)
		h := NewExamHandler(uc)
		r := newTestRouter()
		r.POST("/v1/exams/import", h.ImportExams)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartUpload(t, "catalog.csv", "codigo,nombre,precio\nGLU,Glucosa,15\n"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapExamError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidExamCode, http.StatusBadRequest},
		{usecase.ErrInvalidExamName, http.StatusBadRequest},
		{usecase.ErrInvalidExamPrice, http.StatusBadRequest},
		{usecase.ErrExamAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: X", usecase.ErrExamNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: X", usecase.ErrExamInactive), http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := mapExamError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
