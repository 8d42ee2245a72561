package frontdesk

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/carebridge/hms/internal/platform/console"
)

// Service owns the visitor register and the call log.
type Service struct {
	visitors *VisitorStore
	calls    *CallStore
}

func NewService(visitors *VisitorStore, calls *CallStore) *Service {
	return &Service{visitors: visitors, calls: calls}
}

func (s *Service) visitorDialog() *console.Dialog[*Visitor] {
	return console.NewDialog(s.visitors.Store, console.DialogConfig[*Visitor]{
		Defaults: VisitorDefaults,
		Clone:    CloneVisitor,
		Validate: func(v *Visitor) error { return v.Validate() },
		AssignID: func(v *Visitor) { v.ID = uuid.NewString() },
	})
}

func (s *Service) callDialog() *console.Dialog[*CallLog] {
	return console.NewDialog(s.calls.Store, console.DialogConfig[*CallLog]{
		Defaults: CallDefaults,
		Clone:    CloneCall,
		Validate: func(l *CallLog) error { return l.Validate() },
		AssignID: func(l *CallLog) { l.ID = uuid.NewString() },
	})
}

func (s *Service) CreateVisitor(in *Visitor) (*Visitor, error) {
	d := s.visitorDialog()
	d.OpenAdd()
	applyVisitor(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateVisitor(id string, in *Visitor) (*Visitor, error) {
	d := s.visitorDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyVisitor(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetVisitor(id string) (*Visitor, error) {
	v, ok := s.visitors.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("visitor %s not found", id)
	}
	return v, nil
}

func (s *Service) DeleteVisitor(id string) error {
	if !s.visitors.RemoveByID(id) {
		return fmt.Errorf("visitor %s not found", id)
	}
	return nil
}

func (s *Service) SearchVisitors(term, status string) []*Visitor {
	return s.visitors.Search(term, status)
}

func (s *Service) CreateCall(in *CallLog) (*CallLog, error) {
	d := s.callDialog()
	d.OpenAdd()
	applyCall(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateCall(id string, in *CallLog) (*CallLog, error) {
	d := s.callDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyCall(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetCall(id string) (*CallLog, error) {
	l, ok := s.calls.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("call %s not found", id)
	}
	return l, nil
}

func (s *Service) DeleteCall(id string) error {
	if !s.calls.RemoveByID(id) {
		return fmt.Errorf("call %s not found", id)
	}
	return nil
}

func (s *Service) SearchCalls(term, callType, status string) []*CallLog {
	return s.calls.Search(term, callType, status)
}

type Stats struct {
	Visitors        int            `json:"visitors"`
	VisitorByStatus map[string]int `json:"visitor_by_status"`
	Calls           int            `json:"calls"`
	CallByStatus    map[string]int `json:"call_by_status"`
}

func (s *Service) Stats() Stats {
	visitors := s.visitors.List()
	calls := s.calls.List()
	return Stats{
		Visitors:        len(visitors),
		VisitorByStatus: console.CountBy(visitors, func(v *Visitor) string { return v.Status }),
		Calls:           len(calls),
		CallByStatus:    console.CountBy(calls, func(l *CallLog) string { return l.Status }),
	}
}

func VisitorColumns() []console.Column[*Visitor] {
	return []console.Column[*Visitor]{
		{Header: "Name", Cell: func(v *Visitor) string { return v.Name }},
		{Header: "Visiting", Cell: func(v *Visitor) string { return v.Visiting }},
		{Header: "Purpose", Cell: func(v *Visitor) string { return v.Purpose }},
		{Header: "Check In", Cell: func(v *Visitor) string { return v.CheckIn }},
		{Header: "Status", Cell: func(v *Visitor) string { return VisitorBadges.Lookup(v.Status).Label }},
	}
}

func CallColumns() []console.Column[*CallLog] {
	return []console.Column[*CallLog]{
		{Header: "Caller", Cell: func(l *CallLog) string { return l.Caller }},
		{Header: "Type", Cell: func(l *CallLog) string { return l.Type }},
		{Header: "Subject", Cell: func(l *CallLog) string { return l.Subject }},
		{Header: "Time", Cell: func(l *CallLog) string { return l.Time }},
		{Header: "Status", Cell: func(l *CallLog) string { return CallBadges.Lookup(l.Status).Label }},
	}
}

func applyVisitor(draft, in *Visitor) {
	draft.Name = in.Name
	draft.Phone = in.Phone
	draft.Visiting = in.Visiting
	draft.Purpose = in.Purpose
	draft.CheckIn = in.CheckIn
	draft.CheckOut = in.CheckOut
	if in.Status != "" {
		draft.Status = in.Status
	}
}

func applyCall(draft, in *CallLog) {
	draft.Caller = in.Caller
	draft.Phone = in.Phone
	draft.Subject = in.Subject
	draft.Time = in.Time
	if in.Type != "" {
		draft.Type = in.Type
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
