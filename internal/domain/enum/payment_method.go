package enum

import "encoding/json"

// PaymentMethod represents how a sale was paid. The wire values match the
// records already in the ventas collection.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "efectivo"
	PaymentMethodCard PaymentMethod = "tarjeta"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Valid reports whether the method is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMethod(str)
	return nil
}
