package catalog

// fallbackNames is served when the API cannot be reached and the fallback is enabled
var fallbackNames = []string{
	"Lisboa", "Porto", "Braga", "Coimbra", "Faro", "Aveiro",
	"Leiria", "Santarem", "Setubal", "Viana do Castelo",
	"Vila Real", "Braganca", "Guarda", "Castelo Branco",
	"Portalegre", "Evora", "Beja", "Funchal", "Ponta Delgada",
	"Albufeira", "Almada", "Amadora", "Amarante", "Arouca",
	"Barcelos", "Barreiro", "Caldas da Rainha", "Cascais",
	"Espinho", "Esposende", "Estarreja", "Fafe", "Felgueiras",
	"Figueira da Foz", "Gondomar", "Guimarães", "Ilhavo",
	"Lousada", "Maia", "Marco de Canaveses", "Matosinhos",
	"Odivelas", "Oliveira de Azemeis", "Paredes", "Penafiel",
	"Povoa de Varzim", "Santa Maria da Feira", "Santo Tirso",
	"Seixal", "Sintra", "Trofa", "Vale de Cambra", "Valongo",
	"Vila do Conde", "Vila Nova de Famalicao", "Vila Nova de Gaia",
	"Vizela",
}

// Fallback returns a copy of the built-in municipality list
func Fallback() []string {
	out := make([]string, len(fallbackNames))
	copy(out, fallbackNames)
	return out
}
