package mongodb

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Los montos viajan como decimal.Decimal en dominio y se guardan como
// Decimal128 en BSON; la conversión pasa por la representación textual para
// no tocar nunca float.

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convertir decimal %q a Decimal128: %w", d.String(), err)
	}
	return d128, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	out, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("convertir Decimal128 %q a decimal: %w", d.String(), err)
	}
	return out, nil
}
