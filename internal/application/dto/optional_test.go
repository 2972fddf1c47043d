package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recaudo-api/internal/application/dto"
)

func TestOptional_TresEstados(t *testing.T) {
	var req dto.UpdateCustomerRequest
	body := `{"name":"Ana Gómez","email":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.True(t, req.Name.Set)
	assert.False(t, req.Name.Null)
	assert.Equal(t, "Ana Gómez", req.Name.Value)

	assert.True(t, req.Email.Set, "null explícito cuenta como presente")
	assert.True(t, req.Email.Null)

	assert.False(t, req.Phone.Set, "clave ausente")
}

func TestUpdateCustomerRequest_Patch(t *testing.T) {
	var req dto.UpdateCustomerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"3001234567","email":null,"address":""}`), &req))

	patch := req.Patch()
	require.NotNil(t, patch.Phone)
	assert.Equal(t, "3001234567", *patch.Phone)
	assert.Nil(t, patch.Email, "null conserva el valor guardado")
	assert.Nil(t, patch.Name, "ausente conserva el valor guardado")
	require.NotNil(t, patch.Address, "cadena vacía es un valor")
	assert.Equal(t, "", *patch.Address)
}

func TestOptional_TipoIncorrecto(t *testing.T) {
	var req dto.UpdateCustomerRequest
	assert.Error(t, json.Unmarshal([]byte(`{"name":123}`), &req))
}

func TestOptional_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A dto.Optional[string] `json:"a"`
		B dto.Optional[string] `json:"b"`
	}{A: dto.Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))
}
