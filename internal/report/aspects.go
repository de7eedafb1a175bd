package report

import "github.com/kapilank-k/product-comparator/internal/model"

// GenericOrder is the fixed display order used for ad-hoc input, wide
// enough to cover every field the rule table can produce.
var GenericOrder = []model.Field{
	model.FieldType,
	model.FieldFullForm,
	model.FieldGrade,
	model.FieldDiameter,
	model.FieldLength,
	model.FieldForm,
	model.FieldStandard,
	model.FieldStructure,
	model.FieldExtraInfo,
}

// NormalizedOrder is the field order of the normalized (graded) path
var NormalizedOrder = []model.Field{
	model.FieldGrade,
	model.FieldDiameter,
	model.FieldMaterial,
	model.FieldForm,
	model.FieldLength,
	model.FieldStandard,
}

// pairOrders encodes the curated display orders for the eight known
// sample pairs. This is fixture knowledge, not a contract: pair 4 lists
// a Brand column that no extraction rule ever fills, so its row is
// always suppressed.
var pairOrders = map[int][]model.Field{
	1: {model.FieldFullForm, model.FieldGrade, model.FieldForm, model.FieldStructure, model.FieldExtraInfo},
	2: {model.FieldFullForm, model.FieldGrade, model.FieldDiameter, model.FieldExtraInfo, model.FieldStandard, model.FieldType, model.FieldStructure},
	3: {model.FieldType, model.FieldGrade, model.FieldDiameter, model.FieldLength, model.FieldExtraInfo, model.FieldStandard, model.FieldStructure},
	4: {model.FieldBrand, model.FieldType, model.FieldGrade, model.FieldDiameter, model.FieldStandard, model.FieldStructure},
	5: {model.FieldType, model.FieldGrade, model.FieldDiameter, model.FieldLength, model.FieldStandard, model.FieldStructure},
	6: {model.FieldType, model.FieldGrade, model.FieldDiameter, model.FieldLength, model.FieldStandard, model.FieldStructure},
	7: {model.FieldFullForm, model.FieldGrade, model.FieldForm, model.FieldStructure},
	8: {model.FieldFullForm, model.FieldGrade, model.FieldForm, model.FieldStructure},
}

// Order selects the aspect order for a comparison context. Pair id 0
// means ad-hoc input and yields the generic order; an unrecognized id
// degrades to an empty order (nothing displayed) rather than failing.
func Order(pairID int) []model.Field {
	if pairID == 0 {
		return GenericOrder
	}
	return pairOrders[pairID]
}
