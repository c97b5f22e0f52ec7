package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoleRequirements(t *testing.T) {
	doc := []byte(`{
		"role": "data analyst",
		"required_skills": ["python", "sql"],
		"nice_to_have": ["cloud"]
	}`)

	role, err := ValidateRoleRequirements(doc)
	require.NoError(t, err)
	assert.Equal(t, "data analyst", role.Role)
	assert.Equal(t, []string{"python", "sql"}, role.RequiredSkills)
	assert.Equal(t, []string{"cloud"}, role.NiceToHave)
}

func TestValidateRoleRequirements_RoleOnly(t *testing.T) {
	role, err := ValidateRoleRequirements([]byte(`{"role": "generalist"}`))
	require.NoError(t, err)
	assert.Equal(t, "generalist", role.Role)
	assert.Empty(t, role.RequiredSkills)
}

func TestValidateRoleRequirements_MissingRole(t *testing.T) {
	_, err := ValidateRoleRequirements([]byte(`{"required_skills": ["python"]}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "schema validation failed")
}

func TestValidateRoleRequirements_UnknownPropertyRejected(t *testing.T) {
	_, err := ValidateRoleRequirements([]byte(`{"role": "analyst", "salary": 90000}`))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateRoleRequirements_WrongTypes(t *testing.T) {
	_, err := ValidateRoleRequirements([]byte(`{"role": "analyst", "required_skills": "python"}`))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateRoleRequirements_MalformedJSON(t *testing.T) {
	_, err := ValidateRoleRequirements([]byte(`{"role":`))
	assert.Error(t, err)
}
