package permissions

import (
	"fmt"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
)

const (
	EntityOffer   = "offer"
	EntityLedger  = "ledger"
	EntityWebhook = "webhook"

	ActionRead  = "read"
	ActionWrite = "write"
)

// Op is an action on an entity.
type Op struct {
	Entity string
	Action string
}

// RequiresCaller returns whether the op is performed on behalf of an
// account, whose address must be sent along with the request.
func (o Op) RequiresCaller() bool {
	return o.Entity == EntityOffer && o.Action == ActionWrite
}

// Validate returns an error if any method is mapped to an unknown entity or
// action.
func Validate() error {
	entities := map[string]struct{}{
		EntityOffer: {}, EntityLedger: {}, EntityWebhook: {},
	}
	for method, ops := range AllPermissionsByMethod() {
		if len(ops) <= 0 {
			return fmt.Errorf("%s: missing permissions", method)
		}
		for _, op := range ops {
			if _, ok := entities[op.Entity]; !ok {
				return fmt.Errorf("%s: unknown entity %s", method, op.Entity)
			}
			if op.Action != ActionRead && op.Action != ActionWrite {
				return fmt.Errorf("%s: unknown action %s", method, op.Action)
			}
		}
	}
	return nil
}

// EscrowPermissions returns the permissions of the public escrow service.
func EscrowPermissions() map[string][]Op {
	return map[string][]Op{
		fmt.Sprintf("/%s/CreateOffer", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/AcceptOffer", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/CancelOffer", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/GetOffer", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionRead,
		}},
		fmt.Sprintf("/%s/GetCreatedOffers", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionRead,
		}},
		fmt.Sprintf("/%s/GetWantedOffers", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionRead,
		}},
		fmt.Sprintf("/%s/GetLastOfferId", escrowv1.EscrowService_ServiceDesc.ServiceName): {{
			Entity: EntityOffer,
			Action: ActionRead,
		}},
	}
}

// OperatorPermissions returns the permissions of the operator service.
func OperatorPermissions() map[string][]Op {
	return map[string][]Op{
		fmt.Sprintf("/%s/FundAccount", escrowv1.OperatorService_ServiceDesc.ServiceName): {{
			Entity: EntityLedger,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/GetBalance", escrowv1.OperatorService_ServiceDesc.ServiceName): {{
			Entity: EntityLedger,
			Action: ActionRead,
		}},
		fmt.Sprintf("/%s/AddWebhook", escrowv1.OperatorService_ServiceDesc.ServiceName): {{
			Entity: EntityWebhook,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/RemoveWebhook", escrowv1.OperatorService_ServiceDesc.ServiceName): {{
			Entity: EntityWebhook,
			Action: ActionWrite,
		}},
		fmt.Sprintf("/%s/ListWebhooks", escrowv1.OperatorService_ServiceDesc.ServiceName): {{
			Entity: EntityWebhook,
			Action: ActionRead,
		}},
	}
}

// AllPermissionsByMethod returns a mapping of the RPC server calls to the
// permissions they require.
func AllPermissionsByMethod() map[string][]Op {
	permissions := EscrowPermissions()
	for method, ops := range OperatorPermissions() {
		permissions[method] = ops
	}
	return permissions
}
