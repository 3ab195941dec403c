package booking

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const confirmationAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Codes identify a booking: Id internally, Reference towards the traveller and
// ConfirmationCode towards the provider.
type Codes struct {
	Id               string
	Reference        string
	ConfirmationCode string
}

type CodeGenerator func() Codes

// RandomCodes derives all codes from one random UUID. Reference has the form AI-XXXXXXXX
// (digits) and ConfirmationCode the form CONF-XXXXXXXXX (digits and upper case letters).
func RandomCodes() Codes {
	return codesFrom(uuid.New())
}

func codesFrom(id uuid.UUID) Codes {
	high := binary.BigEndian.Uint64(id[:8])
	low := binary.BigEndian.Uint64(id[8:])

	var confirmation strings.Builder
	for range 9 {
		confirmation.WriteByte(confirmationAlphabet[low%36])
		low /= 36
	}

	return Codes{
		Id:               id.String(),
		Reference:        fmt.Sprintf("AI-%08d", high%100_000_000),
		ConfirmationCode: "CONF-" + confirmation.String(),
	}
}
