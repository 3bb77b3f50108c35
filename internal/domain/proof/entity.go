// internal/domain/proof/entity.go
package proof

// Slot identifies which proof-of-payment a file targets
type Slot string

const (
	SlotBankTransfer Slot = "bank_transfer"
	SlotCODAdvance   Slot = "cod_advance"
)

// Field returns the form field the slot reports errors under
func (s Slot) Field() string {
	if s == SlotCODAdvance {
		return "codDeliveryProof"
	}
	return "bankTransferProof"
}

// Valid reports whether the slot is one of the known proof slots
func (s Slot) Valid() bool {
	return s == SlotBankTransfer || s == SlotCODAdvance
}

// EncodingError is a field-scoped, recoverable error raised while
// converting an uploaded file. The user may reselect a file.
type EncodingError struct {
	Slot    Slot
	Message string
}

func (e *EncodingError) Error() string {
	return e.Message
}
