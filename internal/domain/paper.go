package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PaperType classifies a sample paper.
type PaperType string

// Possible paper type values
const (
	PaperTypePreviousYear PaperType = "previous_year"
	PaperTypeMock         PaperType = "mock"
	PaperTypeSample       PaperType = "sample"
)

// SectionType classifies a section of a paper.
type SectionType string

// Possible section type values
const (
	SectionTypeDefault SectionType = "default"
	SectionTypeCustom  SectionType = "custom"
)

// QuestionType classifies a question within a section.
type QuestionType string

// Possible question type values
const (
	QuestionTypeShort          QuestionType = "short"
	QuestionTypeLong           QuestionType = "long"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// validate is the shared validator instance for domain entities.
var validate = validator.New()

// Question represents a single question inside a section, carrying the
// question and answer text plus identifiers used to reference it elsewhere.
type Question struct {
	Question     string         `json:"question" bson:"question" validate:"required"`
	Answer       string         `json:"answer" bson:"answer" validate:"required"`
	Type         QuestionType   `json:"type" bson:"type" validate:"required,oneof=short long multiple_choice"`
	QuestionSlug string         `json:"question_slug" bson:"question_slug" validate:"required"`
	ReferenceID  string         `json:"reference_id" bson:"reference_id" validate:"required"`
	Hint         string         `json:"hint,omitempty" bson:"hint,omitempty"`
	Params       map[string]any `json:"params,omitempty" bson:"params,omitempty"`
}

// Section represents an ordered group of questions sharing a marking scheme.
type Section struct {
	MarksPerQuestion int         `json:"marks_per_question" bson:"marks_per_question" validate:"required,gt=0"`
	Type             SectionType `json:"type" bson:"type" validate:"required,oneof=default custom"`
	Questions        []Question  `json:"questions" bson:"questions" validate:"dive"`
}

// PaperParams carries the board, grade and subject a paper belongs to.
type PaperParams struct {
	Board   string `json:"board" bson:"board" validate:"required"`
	Grade   int    `json:"grade" bson:"grade" validate:"required"`
	Subject string `json:"subject" bson:"subject" validate:"required"`
}

// Paper represents a sample paper document. The identifier is assigned once
// at creation and is the sole external lookup key; it never changes.
type Paper struct {
	ID       string      `json:"paper_id,omitempty" bson:"paper_id" validate:"required"`
	Title    string      `json:"title" bson:"title" validate:"required"`
	Type     PaperType   `json:"type" bson:"type" validate:"required,oneof=previous_year mock sample"`
	Time     int         `json:"time" bson:"time" validate:"required,gt=0"`
	Marks    int         `json:"marks" bson:"marks" validate:"required,gt=0"`
	Params   PaperParams `json:"params" bson:"params"`
	Tags     []string    `json:"tags" bson:"tags"`
	Chapters []string    `json:"chapters" bson:"chapters"`
	Sections []Section   `json:"sections" bson:"sections" validate:"dive"`
}

// Validate checks the paper against its schema rules. It validates the
// whole record, so callers merging a patch must call it on the merged
// result, never on the patch alone. Returns an error wrapping
// ErrValidation describing the first failing field.
func (p *Paper) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, validationDetail(err))
	}
	return nil
}

// Normalize replaces nil lists with empty ones so stored and returned
// papers always carry concrete arrays.
func (p *Paper) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Chapters == nil {
		p.Chapters = []string{}
	}
	if p.Sections == nil {
		p.Sections = []Section{}
	}
	for i := range p.Sections {
		if p.Sections[i].Questions == nil {
			p.Sections[i].Questions = []Question{}
		}
	}
}

// ApplyPatch merges a partial field map into the paper. Each recognized
// field named in the patch replaces the current value wholesale; unknown
// field names are ignored, and paper_id is not patchable. It returns the
// merged values of the recognized fields, keyed by document field name,
// for the store to persist. The caller must validate the merged paper
// before persisting.
func (p *Paper) ApplyPatch(patch map[string]json.RawMessage) (map[string]any, error) {
	patched := make([]string, 0, len(patch))
	for field, raw := range patch {
		var err error
		switch field {
		case "title":
			err = decodePatchValue(raw, &p.Title)
		case "type":
			err = decodePatchValue(raw, &p.Type)
		case "time":
			err = decodePatchValue(raw, &p.Time)
		case "marks":
			err = decodePatchValue(raw, &p.Marks)
		case "params":
			var params PaperParams
			if err = decodePatchValue(raw, &params); err == nil {
				p.Params = params
			}
		case "tags":
			var tags []string
			if err = decodePatchValue(raw, &tags); err == nil {
				p.Tags = tags
			}
		case "chapters":
			var chapters []string
			if err = decodePatchValue(raw, &chapters); err == nil {
				p.Chapters = chapters
			}
		case "sections":
			var sections []Section
			if err = decodePatchValue(raw, &sections); err == nil {
				p.Sections = sections
			}
		default:
			// Unknown fields, including paper_id, are skipped.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value for field %q", ErrValidation, field)
		}
		patched = append(patched, field)
	}

	p.Normalize()

	fields := make(map[string]any, len(patched))
	for _, field := range patched {
		fields[field] = p.fieldValue(field)
	}
	return fields, nil
}

// fieldValue returns the current value of a patchable field by its
// document field name.
func (p *Paper) fieldValue(field string) any {
	switch field {
	case "title":
		return p.Title
	case "type":
		return p.Type
	case "time":
		return p.Time
	case "marks":
		return p.Marks
	case "params":
		return p.Params
	case "tags":
		return p.Tags
	case "chapters":
		return p.Chapters
	case "sections":
		return p.Sections
	default:
		return nil
	}
}

// decodePatchValue decodes a raw patch value into a fresh destination so
// the replacement is wholesale rather than a partial merge into the
// existing value.
func decodePatchValue(raw json.RawMessage, dst any) error {
	return json.Unmarshal(raw, dst)
}

// validationDetail extracts a compact description of the first failing
// field from a validator error.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("field %s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}
