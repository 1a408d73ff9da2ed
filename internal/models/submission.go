package models

import "time"

// SubmissionRequest is the POST /api/submissions payload.
// survey_id is an optional opaque tag attached by the form UI; answers is the
// completed form as emitted by the renderer — its internal shape is unknown here.
type SubmissionRequest struct {
	SurveyID string                 `json:"surveyId,omitempty"`
	Answers  map[string]interface{} `json:"answers"`
}

// StoredResponse is one persisted submission. It is created exactly once,
// never mutated, and data holds the accepted answers verbatim.
type StoredResponse struct {
	ID          string                 `json:"id" bson:"_id"`
	SurveyID    string                 `json:"surveyId,omitempty" bson:"surveyId,omitempty"`
	Data        map[string]interface{} `json:"data" bson:"data"`
	SubmittedAt time.Time              `json:"submittedAt" bson:"submittedAt"`
}

// SubmissionReceipt is returned by POST /api/submissions on success.
type SubmissionReceipt struct {
	Message string         `json:"message"`
	Saved   StoredResponse `json:"saved"`
}
