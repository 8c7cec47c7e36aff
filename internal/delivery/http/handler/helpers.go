package handler

import (
	"errors"
	"io"
	"net/http"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/usecase"
	"unibooking/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxUploadSize bounds multipart form parsing (32 MB).
const maxUploadSize = 32 << 20

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// formFile reads one optional multipart file into memory. A missing
// file is not an error; the usecase decides whether it was required.
func formFile(r *http.Request, field string) (*dto.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &dto.FileUpload{Filename: header.Filename, Data: data}, nil
}

// writeFieldErrors writes a usecase-level field validation rejection.
// Returns false when err is of a different kind.
func writeFieldErrors(w http.ResponseWriter, err error) bool {
	var valErr *usecase.ValidationError
	if errors.As(err, &valErr) {
		response.ValidationError(w, valErr.Fields)
		return true
	}
	return false
}
