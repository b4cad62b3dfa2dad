package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/guardia-pa/guardia/pkg/form"
)

// Questionnaire records travel as open maps: the backend stores whatever the
// form aggregate holds, plus a server-assigned "_id".
const idField = "_id"

// RecordID extracts the server-assigned identifier of a questionnaire
// record; empty when absent.
func RecordID(record form.Record) string {
	id, _ := record[idField].(string)
	return id
}

// QuestionnaireService is the CRUD surface of one questionnaire collection.
// Obtain instances from Client.VictimQuestionnaires or
// Client.AuthorQuestionnaires.
type QuestionnaireService struct {
	client *Client
	path   string
}

// VictimQuestionnaires targets the victim collection.
func (c *Client) VictimQuestionnaires() *QuestionnaireService {
	return &QuestionnaireService{client: c, path: "/vquestionnaires"}
}

// AuthorQuestionnaires targets the aggressor collection.
func (c *Client) AuthorQuestionnaires() *QuestionnaireService {
	return &QuestionnaireService{client: c, path: "/questionnaires"}
}

// List fetches every record of the collection.
func (s *QuestionnaireService) List(ctx context.Context) ([]form.Record, error) {
	var out []form.Record
	if err := s.client.do(ctx, http.MethodGet, s.path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one record by id.
func (s *QuestionnaireService) Get(ctx context.Context, id string) (form.Record, error) {
	var out form.Record
	if err := s.client.do(ctx, http.MethodGet, s.path+"/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByDocument filters the collection server-side by CPF and/or RG.
// Blank arguments are omitted from the query.
func (s *QuestionnaireService) SearchByDocument(ctx context.Context, cpf, rg string) ([]form.Record, error) {
	query := url.Values{}
	if cpf != "" {
		query.Set("cpf", cpf)
	}
	if rg != "" {
		query.Set("rg", rg)
	}
	var out []form.Record
	if err := s.client.do(ctx, http.MethodGet, s.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a new record and returns the stored copy, id included.
func (s *QuestionnaireService) Create(ctx context.Context, record form.Record) (form.Record, error) {
	var out form.Record
	if err := s.client.do(ctx, http.MethodPost, s.path, nil, record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record with the given id.
func (s *QuestionnaireService) Update(ctx context.Context, id string, record form.Record) (form.Record, error) {
	var out form.Record
	if err := s.client.do(ctx, http.MethodPut, s.path+"/"+url.PathEscape(id), nil, record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record with the given id.
func (s *QuestionnaireService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, s.path+"/"+url.PathEscape(id), nil, nil, nil)
}
