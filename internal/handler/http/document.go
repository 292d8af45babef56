package http

import (
	"net/http"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/handler/http/response"
)

// DocumentHandler serves the emitted purchase orders and payment statements.
type DocumentHandler interface {
	ListPeriod(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

func (h *documentHandlerImpl) ListPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromURL(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	documents, err := h.documentService.ListPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, documents)
}
