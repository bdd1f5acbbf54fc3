package rtr

import (
	"encoding/json"
	"time"
)

// ProcessStatus is the state of a process.
type ProcessStatus string

// Process states.
const (
	ProcessStatusNew       ProcessStatus = "NEW"
	ProcessStatusValidated ProcessStatus = "VALIDATED"
	ProcessStatusRunning   ProcessStatus = "RUNNING"
	ProcessStatusCompleted ProcessStatus = "COMPLETED"
	ProcessStatusInvalid   ProcessStatus = "INVALID"
	ProcessStatusCancelled ProcessStatus = "CANCELLED"
	ProcessStatusFailed    ProcessStatus = "FAILED"
	ProcessStatusInDoubt   ProcessStatus = "IN_DOUBT"
	ProcessStatusScheduled ProcessStatus = "SCHEDULED"
	ProcessStatusSuspended ProcessStatus = "SUSPENDED"
)

// ResumeType is a way a suspended process may continue.
type ResumeType string

// Resume types.
const (
	ResumeProvider ResumeType = "PROVIDER"
	ResumeTimer    ResumeType = "TIMER"
	ResumeManual   ResumeType = "MANUAL"
	ResumeInternal ResumeType = "INTERNAL"
	ResumeResend   ResumeType = "RESEND"
	ResumeCancel   ResumeType = "CANCEL"
)

// Process is a unit of work executed on behalf of a customer.
type Process struct {
	ID           int             `json:"id"                     yaml:"id"`
	Action       string          `json:"action"                 yaml:"action"`
	Billables    []Billable      `json:"billables,omitempty"    yaml:"billables,omitempty"`
	Command      json.RawMessage `json:"command,omitempty"      yaml:"-"`
	CreatedDate  time.Time       `json:"createdDate"            yaml:"createdDate"`
	Customer     string          `json:"customer"               yaml:"customer"`
	Identifier   string          `json:"identifier"             yaml:"identifier"`
	Status       ProcessStatus   `json:"status"                 yaml:"status"`
	StatusDetail string          `json:"statusDetail,omitempty" yaml:"statusDetail,omitempty"`
	ResumeTypes  []ResumeType    `json:"resumeTypes,omitempty"  yaml:"resumeTypes,omitempty"`
	StartedDate  *time.Time      `json:"startedDate,omitempty"  yaml:"startedDate,omitempty"`
	Type         string          `json:"type"                   yaml:"type"`
	UpdatedDate  *time.Time      `json:"updatedDate,omitempty"  yaml:"updatedDate,omitempty"`
	User         string          `json:"user"                   yaml:"user"`
	Reservation  map[string]int  `json:"reservation,omitempty"  yaml:"reservation,omitempty"`
	Transaction  map[string]int  `json:"transaction,omitempty"  yaml:"transaction,omitempty"`
	Refund       map[string]int  `json:"refund,omitempty"       yaml:"refund,omitempty"`
	Error        map[string]any  `json:"error,omitempty"        yaml:"error,omitempty"`
}

// ProcessNoteRequest adds a note to a process.
type ProcessNoteRequest struct {
	Message string `json:"message"`
}

// ValidationCallRequest schedules a validation call.
type ValidationCallRequest struct {
	Date time.Time `json:"date"`
}
