package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// Ratio representa uma métrica derivada de uma divisão que pode ser
// indefinida quando o denominador é zero. O valor indefinido nunca é
// NaN nem infinito: ele é serializado como null e lido como zero.
type Ratio struct {
	value   float64
	defined bool
}

// NewRatio calcula num/den, retornando um Ratio indefinido quando den == 0.
func NewRatio(num, den float64) Ratio {
	return NewScaledRatio(num, den, 1)
}

// NewScaledRatio calcula (num/den)*scale, retornando um Ratio indefinido
// quando den == 0. Usado para métricas percentuais (CTR) e por mil (CPM).
func NewScaledRatio(num, den, scale float64) Ratio {
	if den == 0 {
		return Ratio{}
	}

	value := (num / den) * scale
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Ratio{}
	}

	return Ratio{value: value, defined: true}
}

// DefinedRatio cria um Ratio definido com o valor informado.
func DefinedRatio(value float64) Ratio {
	return Ratio{value: value, defined: true}
}

// UndefinedRatio cria um Ratio indefinido.
func UndefinedRatio() Ratio {
	return Ratio{}
}

// Defined informa se a métrica pôde ser calculada.
func (r Ratio) Defined() bool {
	return r.defined
}

// Value retorna o valor da métrica, ou zero quando indefinida.
func (r Ratio) Value() float64 {
	if !r.defined {
		return 0
	}
	return r.value
}

// MarshalJSON serializa o valor, ou null quando a métrica é indefinida.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON lê null como indefinido e qualquer número como definido.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Ratio{}
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*r = Ratio{value: value, defined: true}
	return nil
}
