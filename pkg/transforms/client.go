package transforms

var transforms []*TransformDefinition

const metroAgency = "Sistema de Transporte Colectivo"

var metroLineColours = map[string]string{
	"1":  "F04E98",
	"2":  "005EB8",
	"3":  "AF9800",
	"4":  "6BBBAE",
	"5":  "FFD100",
	"6":  "DA291C",
	"7":  "E87722",
	"8":  "009A44",
	"9":  "512F2E",
	"A":  "981D97",
	"B":  "B1B3B3",
	"12": "B0A32A",
}

func SetupClient() {
	transforms = nil

	for _, typeName := range []string{"ctdf.RouteRef", "ctdf.Route"} {
		for line, colour := range metroLineColours {
			transforms = append(transforms, &TransformDefinition{
				Type: typeName,
				Match: map[string]string{
					"AgencyName": metroAgency,
					"ShortName":  line,
				},
				Data: map[string]interface{}{
					"Color":     colour,
					"TextColor": "FFFFFF",
				},
			})
		}

		// Metrobús
		transforms = append(transforms, &TransformDefinition{
			Type: typeName,
			Match: map[string]string{
				"AgencyName": "Metrobús",
			},
			Data: map[string]interface{}{
				"Color":     "C8102E",
				"TextColor": "FFFFFF",
			},
		})
	}
}
