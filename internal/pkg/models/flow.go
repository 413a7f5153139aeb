package models

import "fmt"

// RawFlowPayload is the untyped field map delivered by a flow-completion
// callback: strings, option-ID strings, or arrays of option-ID strings.
// It is never persisted directly; the payload normalizer runs first.
type RawFlowPayload map[string]interface{}

// String coerces a field to its string form; absent fields yield ""
func (p RawFlowPayload) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// StringList returns a field as a list of strings. A scalar value is treated
// as a one-element list so single-select and multi-select screens resolve
// through the same mapping path.
func (p RawFlowPayload) StringList(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	switch vv := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out
	case []string:
		return vv
	case string:
		if vv == "" {
			return nil
		}
		return []string{vv}
	default:
		return []string{fmt.Sprintf("%v", vv)}
	}
}

// Bool coerces a field to a boolean; only an explicit true counts
func (p RawFlowPayload) Bool(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	switch vv := v.(type) {
	case bool:
		return vv
	case string:
		return vv == "true" || vv == "1" || vv == "yes"
	default:
		return false
	}
}

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of the pre-persistence validation pass.
// Validation never raises past the normalizer; callers receive this shape.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// AddError records a field-level failure and marks the result invalid
func (r *ValidationResult) AddError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// FlowSendOutcome discriminates the mutually exclusive results of an
// onboarding send attempt
type FlowSendOutcome string

const (
	OutcomeAlreadyRegistered FlowSendOutcome = "already_registered"
	OutcomeFlowSent          FlowSendOutcome = "flow_sent"
	OutcomeTextFallback      FlowSendOutcome = "text_fallback"
	OutcomeFailed            FlowSendOutcome = "failed"
)

// FlowSendResult reports how an onboarding entry point was delivered.
// Callers discriminate on Outcome, never on free-text messages.
type FlowSendResult struct {
	Outcome       FlowSendOutcome `json:"outcome"`
	FlowToken     string          `json:"flow_token,omitempty"`
	FallbackState string          `json:"fallback_state,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
}

// FlowCompletionResult reports a successfully handled flow completion
type FlowCompletionResult struct {
	FlowType FlowType `json:"flow_type"`
	RecordID string   `json:"record_id,omitempty"`
	Message  string   `json:"message"`
}

// TextRegistrationSession tracks a plain-text conversational registration
// started after a structured flow could not be delivered
type TextRegistrationSession struct {
	PhoneNumber string `json:"phone_number"`
	Domain      string `json:"domain"`
	Step        string `json:"step"`
	Reason      string `json:"reason,omitempty"`
}

// Text registration steps. Only the entry step is minted by the fallback
// path; later transitions belong to the conversational engine.
const (
	TextStepAwaitingFullName = "awaiting_full_name"
)

// FlowMessage is the declarative document handed to the messaging gateway
// for structured-flow delivery
type FlowMessage struct {
	To            string `json:"to"`
	HeaderText    string `json:"header_text"`
	BodyText      string `json:"body_text"`
	FooterText    string `json:"footer_text"`
	CTAText       string `json:"cta_text"`
	FlowID        string `json:"flow_id"`
	FlowToken     string `json:"flow_token"`
	InitialScreen string `json:"initial_screen"`
}
