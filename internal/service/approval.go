package service

const (
	ChangeMinor     = "minor"
	ChangeFinancial = "financial"
)

type ChangeRequest struct {
	Type string
}

// Approver is one link of the approval chain. A link either decides the request
// or passes it on.
type Approver interface {
	Approve(req ChangeRequest) string
}

const notHandled = "request not handled"

type Manager struct {
	Next Approver
}

func (m Manager) Approve(req ChangeRequest) string {
	if req.Type == ChangeMinor {
		return "change approved by manager"
	}
	return forward(m.Next, req)
}

type FinanceDepartment struct {
	Next Approver
}

func (f FinanceDepartment) Approve(req ChangeRequest) string {
	if req.Type == ChangeFinancial {
		return "change approved by finance department"
	}
	return forward(f.Next, req)
}

// Director approves anything that reaches it.
type Director struct{}

func (Director) Approve(ChangeRequest) string {
	return "change approved by director"
}

func forward(next Approver, req ChangeRequest) string {
	if next == nil {
		return notHandled
	}
	return next.Approve(req)
}

func NewApprovalChain() Approver {
	return Manager{Next: FinanceDepartment{Next: Director{}}}
}

// ApproveChange routes a change request through the approval chain.
func (s *RentalService) ApproveChange(req ChangeRequest) string {
	decision := s.approvals.Approve(req)
	s.log.Info().Str("change", req.Type).Str("decision", decision).Msg("change request processed")
	return decision
}
