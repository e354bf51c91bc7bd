package bncc

// BandKey identifies one of the eight curriculum stages.
type BandKey string

const (
	BandBebes        BandKey = "educacao_infantil_bebes"
	BandBemPequenas  BandKey = "educacao_infantil_bem_pequenas"
	BandPequenas     BandKey = "educacao_infantil_pequenas"
	BandFundamental1 BandKey = "fundamental_1_ano"
	BandFundamental2 BandKey = "fundamental_2_ano"
	BandFundamental3 BandKey = "fundamental_3_ano"
	BandFundamental4 BandKey = "fundamental_4_ano"
	BandFundamental5 BandKey = "fundamental_5_ano"
)

// Stage discriminates the two band variants.
type Stage int

const (
	// StageEarlyChildhood bands group records by field of experience.
	StageEarlyChildhood Stage = iota
	// StageElementary bands group records by subject.
	StageElementary
)

// GroupsField is the object key holding the band's groups in the generated module.
func (s Stage) GroupsField() string {
	if s == StageEarlyChildhood {
		return "campos_experiencia"
	}
	return "disciplinas"
}

// Kind is the `tipo` tag carried by flattened records.
func (s Stage) Kind() string {
	if s == StageEarlyChildhood {
		return "educacao_infantil"
	}
	return "ensino_fundamental"
}

// Label is the human-readable stage name used in reports.
func (s Stage) Label() string {
	if s == StageEarlyChildhood {
		return "Educação Infantil"
	}
	return "Ensino Fundamental"
}

// Band is a static band definition.
type Band struct {
	Key   BandKey
	Title string
	Order int
	Stage Stage
}

// bands is in canonical display order.
var bands = []Band{
	{BandBebes, "Educação Infantil - Bebês (0 a 1a6m)", 1, StageEarlyChildhood},
	{BandBemPequenas, "Educação Infantil - Crianças bem pequenas (1a7m a 3a11m)", 2, StageEarlyChildhood},
	{BandPequenas, "Educação Infantil - Crianças pequenas (4a a 5a11m)", 3, StageEarlyChildhood},
	{BandFundamental1, "Ensino Fundamental - 1º ano", 4, StageElementary},
	{BandFundamental2, "Ensino Fundamental - 2º ano", 5, StageElementary},
	{BandFundamental3, "Ensino Fundamental - 3º ano", 6, StageElementary},
	{BandFundamental4, "Ensino Fundamental - 4º ano", 7, StageElementary},
	{BandFundamental5, "Ensino Fundamental - 5º ano", 8, StageElementary},
}

// Bands returns the eight bands in display order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// OtherGroup collects records whose field or subject token is unknown.
const OtherGroup = "Outros"

var fieldsOfExperience = map[string]string{
	"EO": "O eu, o outro e o nós",
	"CG": "Corpo, gestos e movimentos",
	"TS": "Traços, sons, cores e formas",
	"EF": "Escuta, fala, pensamento e imaginação",
	"ET": "Espaços, tempos, quantidades, relações e transformações",
}

var subjects = map[string]string{
	"LP": "Língua Portuguesa",
	"AR": "Arte",
	"EF": "Educação Física",
	"MA": "Matemática",
	"CI": "Ciências",
	"GE": "Geografia",
	"HI": "História",
	"ER": "Ensino Religioso",
}

// gradeBands maps a two-digit grade token to its band.
var gradeBands = map[string]BandKey{
	"01": BandFundamental1,
	"02": BandFundamental2,
	"03": BandFundamental3,
	"04": BandFundamental4,
	"05": BandFundamental5,
}

// multiGrade expands the span markers used by codes shared across years.
var multiGrade = map[string][]string{
	"15": {"01", "02", "03", "04", "05"},
	"12": {"01", "02"},
	"35": {"03", "04", "05"},
}
