package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/lshigami/Quolls/config"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/rs/zerolog/log"
)

// DefinitionLoader resolves an assessment identifier to its full definition.
// Edit mode fetches the live authoring copy and bypasses the cache.
type DefinitionLoader interface {
	Load(ctx context.Context, assessmentID string, editMode bool) (*model.AssessmentDefinition, error)
}

type catalogDefinitionLoader struct {
	client *resty.Client
	cache  *DefinitionCache
}

func NewDefinitionLoader(cfg *config.Config, cache *DefinitionCache) DefinitionLoader {
	client := resty.New().
		SetBaseURL(cfg.Catalog.BaseURL).
		SetHeader("Accept", "application/json")
	return &catalogDefinitionLoader{client: client, cache: cache}
}

func (l *catalogDefinitionLoader) Load(ctx context.Context, assessmentID string, editMode bool) (*model.AssessmentDefinition, error) {
	if assessmentID == "" {
		return nil, fmt.Errorf("load definition: %w", ErrInvalidRequest)
	}

	if !editMode {
		if def, ok := l.cache.Get(assessmentID); ok {
			return def, nil
		}
	}

	path := "/api/assessment/v1/read/{assessmentID}"
	if editMode {
		path = "/api/assessment/v1/authoring/read/{assessmentID}"
	}

	var def model.AssessmentDefinition
	resp, err := l.client.R().
		SetContext(ctx).
		SetPathParam("assessmentID", assessmentID).
		SetResult(&def).
		Get(path)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Catalog read failed")
		return nil, fmt.Errorf("%w: %v", ErrDefinitionLoadFailure, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("assessmentID", assessmentID).Msg("Catalog returned error status")
		return nil, fmt.Errorf("%w: catalog status %d", ErrDefinitionLoadFailure, resp.StatusCode())
	}
	if def.Identifier == "" {
		return nil, fmt.Errorf("%w: empty definition", ErrDefinitionLoadFailure)
	}

	if !editMode {
		l.cache.Put(assessmentID, &def)
	}
	return &def, nil
}
