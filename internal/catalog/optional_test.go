// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var in struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[string] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"b":null,"c":"  hi "}`), &in))

	assert.False(t, in.A.Set, "absent key")
	assert.False(t, in.A.Present())

	assert.True(t, in.B.Set, "explicit null")
	assert.True(t, in.B.Null)
	assert.False(t, in.B.Present())

	assert.True(t, in.C.Present())
	assert.Equal(t, "  hi ", in.C.Value)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var in struct {
		N Optional[int] `json:"n"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"n":"five"}`), &in))
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}
