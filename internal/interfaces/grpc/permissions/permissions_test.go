package permissions_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/permissions"
)

func TestRestrictedMethods(t *testing.T) {
	allMethods := make([]string, 0)
	for _, m := range escrowv1.EscrowService_ServiceDesc.Methods {
		allMethods = append(allMethods, fmt.Sprintf("/%s/%s", escrowv1.EscrowService_ServiceDesc.ServiceName, m.MethodName))
	}
	for _, m := range escrowv1.OperatorService_ServiceDesc.Methods {
		allMethods = append(allMethods, fmt.Sprintf("/%s/%s", escrowv1.OperatorService_ServiceDesc.ServiceName, m.MethodName))
	}

	allPermissions := permissions.AllPermissionsByMethod()
	require.Len(t, allPermissions, len(allMethods))
	for _, method := range allMethods {
		_, ok := allPermissions[method]
		require.True(t, ok, fmt.Sprintf("missing permission for %s", method))
	}
}

func TestMethodsRequiringCaller(t *testing.T) {
	expected := map[string]bool{
		"CreateOffer":      true,
		"AcceptOffer":      true,
		"CancelOffer":      true,
		"GetOffer":         false,
		"GetCreatedOffers": false,
		"GetWantedOffers":  false,
		"GetLastOfferId":   false,
	}

	escrowPermissions := permissions.EscrowPermissions()
	for method, requiresCaller := range expected {
		fullMethod := fmt.Sprintf("/%s/%s", escrowv1.EscrowService_ServiceDesc.ServiceName, method)
		ops := escrowPermissions[fullMethod]
		require.Len(t, ops, 1)
		require.Equal(t, requiresCaller, ops[0].RequiresCaller(), method)
	}
	for _, ops := range permissions.OperatorPermissions() {
		require.False(t, ops[0].RequiresCaller())
	}
}

func TestValidatePermissions(t *testing.T) {
	if err := permissions.Validate(); err != nil {
		t.Fatal(err)
	}
}
