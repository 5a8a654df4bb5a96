// Package checkout models the three-step order wizard: delivery info,
// payment method, confirmation. Transitions are guarded by validation;
// a failed guard fills an error map and leaves the state alone.
package checkout

import (
	"errors"

	"calipollo/internal/domain"
	"calipollo/internal/validate"
)

type Step int

const (
	StepDelivery Step = 1
	StepPayment  Step = 2
	StepConfirm  Step = 3
)

func (s Step) String() string {
	switch s {
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirmation"
	}
	return "unknown"
}

// ErrNotConfirmable is returned when place-order is attempted before
// the machine reaches the confirmation step.
var ErrNotConfirmable = errors.New("checkout: not at confirmation step")

type Machine struct {
	step  Step
	draft domain.OrderDraft
}

func New() *Machine { return &Machine{step: StepDelivery} }

func (m *Machine) Step() Step               { return m.step }
func (m *Machine) Draft() domain.OrderDraft { return m.draft }

// SubmitDelivery validates the delivery form and advances 1 -> 2.
// Returns a field-keyed error map; empty means the transition happened.
func (m *Machine) SubmitDelivery(address, phone, notes string) map[string]string {
	errs := map[string]string{}
	addr, ok := validate.Address(address)
	if !ok {
		errs["address"] = "delivery address is required"
	}
	ph, ok := validate.Phone(phone)
	if !ok {
		errs["phone"] = "enter a valid phone with at least 10 digits"
	}
	if len(errs) > 0 {
		return errs
	}
	m.draft.Address = addr
	m.draft.Phone = ph
	m.draft.Notes = notes
	if m.step == StepDelivery {
		m.step = StepPayment
	}
	return errs
}

// SubmitPayment validates the method and advances 2 -> 3. Calling it
// from the delivery step is a guard failure, not a panic.
func (m *Machine) SubmitPayment(method string) map[string]string {
	errs := map[string]string{}
	if m.step < StepPayment {
		errs["step"] = "complete delivery info first"
		return errs
	}
	pm, ok := validate.PaymentMethod(method)
	if !ok {
		errs["payment_method"] = "select a valid payment method"
		return errs
	}
	m.draft.PaymentMethod = pm
	m.step = StepConfirm
	return errs
}

// Back steps toward delivery info; it never clears the draft, so the
// forms stay pre-filled. No-op at step 1.
func (m *Machine) Back() {
	if m.step > StepDelivery {
		m.step--
	}
}

// Confirmable reports whether place-order may run.
func (m *Machine) Confirmable() bool { return m.step == StepConfirm }

// Reset returns to step 1 with an empty draft, after a placed order.
func (m *Machine) Reset() {
	m.step = StepDelivery
	m.draft = domain.OrderDraft{}
}
