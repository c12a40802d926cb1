package lineage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
	"github.com/aigovhub/lineage/pkg/utils"
)

func dependency(parent, child int64, parentVersion, childVersion *int64) *entities.ModelDependency {
	return &entities.ModelDependency{
		ParentModelID:   parent,
		ParentVersionID: parentVersion,
		ChildModelID:    child,
		ChildVersionID:  childVersion,
		DependencyType:  entities.DependencyTypeDerivedFrom,
	}
}

func TestCheckSelfDependency(t *testing.T) {
	t.Parallel()

	v1 := utils.PtrTo(int64(1))
	v2 := utils.PtrTo(int64(2))

	scenarios := []struct {
		name       string
		policy     config.SelfDependencyPolicy
		dependency *entities.ModelDependency
		code       contract.ErrorCode
	}{
		{"allow accepts self", config.SelfDependencyAllow, dependency(5, 5, nil, nil), ""},
		{"reject refuses self", config.SelfDependencyReject, dependency(5, 5, nil, nil), contract.ErrorCodeInvalidParameterValue},
		{"reject refuses versioned self", config.SelfDependencyReject, dependency(5, 5, v1, v2), contract.ErrorCodeInvalidParameterValue},
		{"reject accepts distinct models", config.SelfDependencyReject, dependency(4, 5, nil, nil), ""},
		{"same version accepts distinct versions", config.SelfDependencyRejectSameVersion, dependency(5, 5, v1, v2), ""},
		{"same version refuses equal versions", config.SelfDependencyRejectSameVersion, dependency(5, 5, v1, v1), contract.ErrorCodeInvalidParameterValue},
		{"same version refuses missing version", config.SelfDependencyRejectSameVersion, dependency(5, 5, v1, nil), contract.ErrorCodeInvalidParameterValue},
		{"same version refuses unversioned", config.SelfDependencyRejectSameVersion, dependency(5, 5, nil, nil), contract.ErrorCodeInvalidParameterValue},
		{"unknown policy", config.SelfDependencyPolicy("maybe"), dependency(5, 5, nil, nil), contract.ErrorCodeInternalError},
		{"unknown policy ignores distinct models", config.SelfDependencyPolicy("maybe"), dependency(4, 5, nil, nil), ""},
	}

	for _, scenario := range scenarios {
		scenario := scenario
		t.Run(scenario.name, func(t *testing.T) {
			t.Parallel()

			err := CheckSelfDependency(scenario.policy, scenario.dependency)
			if scenario.code == "" {
				assert.Nil(t, err)

				return
			}

			require.NotNil(t, err)
			assert.Equal(t, scenario.code, err.Code)
		})
	}
}
