package entity

// Tipos de media soportados en productos, accesorios y repuestos.
const (
	MediaImage     = "image"
	MediaVideo     = "video"
	MediaInstagram = "instagram"
)

// Media es un elemento multimedia asociado a un ítem del catálogo.
// El orden del slice se conserva tal como se recibió.
type Media struct {
	Type string `bson:"type" json:"type"` // image | video | instagram
	URL  string `bson:"url" json:"url"`
}

// SocialLinks enlaces sociales opcionales de un producto.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// Unidades válidas para Dimensions.
const (
	UnitMillimeter = "mm"
	UnitCentimeter = "cm"
	UnitInch       = "in"
)

// Dimensions dimensiones físicas opcionales de un accesorio o repuesto.
type Dimensions struct {
	Length float64 `bson:"length" json:"length"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
	Unit   string  `bson:"unit" json:"unit"` // mm | cm | in
}

// ValidMediaType indica si el tipo de media es uno de los soportados.
func ValidMediaType(t string) bool {
	return t == MediaImage || t == MediaVideo || t == MediaInstagram
}

// ValidDimensionUnit indica si la unidad es una de las soportadas.
func ValidDimensionUnit(u string) bool {
	return u == UnitMillimeter || u == UnitCentimeter || u == UnitInch
}
