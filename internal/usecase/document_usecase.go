package usecase

import (
	"context"

	"unibooking/internal/delivery/dto"
	"unibooking/internal/service"

	"github.com/sirupsen/logrus"
)

// rawTextLimit caps the extracted-text snippet returned to the client.
const rawTextLimit = 4000

// DocumentUsecase parses uploaded provider vouchers and suggests
// booking form values. Suggestions are advisory; nothing is persisted.
type DocumentUsecase interface {
	Parse(ctx context.Context, filename string, data []byte) (*dto.ParseDocumentResponse, error)
}

type documentUsecase struct {
	log       *logrus.Logger
	extractor *service.DocumentExtractor
}

func NewDocumentUsecase(log *logrus.Logger, extractor *service.DocumentExtractor) DocumentUsecase {
	return &documentUsecase{
		log:       log,
		extractor: extractor,
	}
}

func (u *documentUsecase) Parse(ctx context.Context, filename string, data []byte) (*dto.ParseDocumentResponse, error) {
	text, err := u.extractor.ExtractText(filename, data)
	if err != nil {
		u.log.Warnf("Failed to extract document text: %+v", err)
		return nil, err
	}

	snippet := text
	if len(snippet) > rawTextLimit {
		snippet = snippet[:rawTextLimit]
	}

	return &dto.ParseDocumentResponse{
		Suggestions: u.extractor.SmartParse(text),
		RawText:     snippet,
	}, nil
}
