package respond

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
)

func TestFrom_SuccessEnvelope(t *testing.T) {
	t.Parallel()

	r := rail.Success(map[string]string{"email": "a@b.co"})
	env := OK(r)

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Equal(t, r.ID().String(), env.TraceID)

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":true,"data":{"email":"a@b.co"},"error":null,"traceId":"`+env.TraceID+`"}`,
		string(body))
}

func TestFrom_FailureEnvelope(t *testing.T) {
	t.Parallel()

	r := rail.Fail[string](fault.New("USER_NOT_FOUND", "user does not exist"))
	env := OK(r)

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "user does not exist", env.Error.Message)
	assert.NotEmpty(t, env.TraceID)

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":false,"data":null,"error":{"code":"USER_NOT_FOUND","message":"user does not exist"},"traceId":"`+env.TraceID+`"}`,
		string(body))
}

func TestFrom_ProjectsSuccessValue(t *testing.T) {
	t.Parallel()

	type session struct{ Token string }

	env := From(rail.Success(session{Token: "abc"}), func(s session) any {
		return map[string]string{"token": s.Token}
	})

	assert.Equal(t, map[string]string{"token": "abc"}, env.Data)
}
