package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCodecRoundTrip(t *testing.T) {
	addr := &Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Complement:   "Apto 45",
		Neighborhood: "Centro",
		City:         "Curitiba",
		State:        "PR",
		ZipCode:      "80010-000",
	}

	decoded := DecodeAddress(EncodeAddress(addr))
	require.NotNil(t, decoded)
	assert.Equal(t, addr, decoded)
}

func TestDecodeAddressFailSoft(t *testing.T) {
	assert.Nil(t, DecodeAddress(""))
	assert.Nil(t, DecodeAddress("   "))
	assert.Nil(t, DecodeAddress("Rua sem JSON, 12"))
}

func TestFormatAddressLine(t *testing.T) {
	tests := []struct {
		name string
		addr *Address
		want string
	}{
		{
			name: "nil address",
			addr: nil,
			want: "",
		},
		{
			name: "full address",
			addr: &Address{
				Street: "Rua das Flores", Number: "123", Complement: "Apto 45",
				Neighborhood: "Centro", City: "Curitiba", State: "PR", ZipCode: "80010-000",
			},
			want: "Rua das Flores, 123, Apto 45, Centro, Curitiba - PR, CEP: 80010-000",
		},
		{
			name: "missing fields keep their commas",
			addr: &Address{Street: "Rua A", Number: "1"},
			want: "Rua A, 1, ,  - , CEP: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAddressLine(tt.addr))
		})
	}
}

func TestFormatAddressValue(t *testing.T) {
	// Legacy free-form values pass through unchanged.
	assert.Equal(t, "Av. Brasil, 1500", FormatAddressValue("Av. Brasil, 1500"))

	encoded := EncodeAddress(&Address{
		Street: "Rua B", Number: "7", Neighborhood: "Sul",
		City: "Londrina", State: "PR", ZipCode: "86000-000",
	})
	assert.Equal(t, "Rua B, 7, Sul, Londrina - PR, CEP: 86000-000", FormatAddressValue(encoded))
}

func TestGuarantorCodec(t *testing.T) {
	g := &Guarantor{Person: Person{
		Name:     "Carlos Souza",
		Document: "999.888.777-66",
		Phone:    "(41) 99999-0000",
	}}

	decoded := DecodeGuarantor(EncodeGuarantor(g))
	require.NotNil(t, decoded)
	assert.Equal(t, g, decoded)

	assert.Nil(t, DecodeGuarantor(""))
	assert.Nil(t, DecodeGuarantor("{broken"))
	// An empty object is not a guarantor.
	assert.Nil(t, DecodeGuarantor("{}"))
}
