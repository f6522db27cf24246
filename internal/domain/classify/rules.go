package classify

import "github.com/prioritycare/pretriage/internal/domain/catalog"

func boolCheck(question string, want bool) Check {
	return Check{Question: question, Operator: OpEqual, Value: catalog.BoolValue(want)}
}

func optionsCheck(question string, options ...string) Check {
	expected := make([]catalog.Value, 0, len(options))
	for _, o := range options {
		expected = append(expected, catalog.StringValue(o))
	}
	return Check{Question: question, Operator: OpEqual, AnyOf: expected}
}

func scaleCheck(question string, values ...float64) Check {
	expected := make([]catalog.Value, 0, len(values))
	for _, v := range values {
		expected = append(expected, catalog.NumberValue(v))
	}
	return Check{Question: question, Operator: OpIn, AnyOf: expected}
}

func rule(level int, guard Guard, checks ...Check) Rule {
	return Rule{Checks: checks, Guard: guard, Level: level}
}

// DefaultRules returns the built-in severity rule set. Rules for the
// pregnancy and older-adult tracks are guarded so they only apply to
// patients who can reach those questions.
func DefaultRules() []Rule {
	return []Rule{
		// Level 1: resuscitation-grade findings.
		rule(1, GuardElderlyOnly, optionsCheck("adulto_mayor_ESI1",
			"Dificultad para respirar muy fuerte",
			"Dolor en el pecho muy intenso",
			"Confusión o desorientación repentina",
			"Fiebre muy alta junto con debilidad extrema")),
		rule(1, GuardPregnantOnly, optionsCheck("sintomas_graves_embarazo_ESI1",
			"Sangrado vaginal muy abundante o con coágulos grandes",
			"Dolor fuerte en el vientre que no se quita",
			"Salida repentina de líquido por la vagina (como si se rompiera una bolsa)",
			"Fiebre alta con escalofríos",
			"Mareo muy fuerte o desmayo",
			"No siente que el bebé se mueva (si tiene más de 5 meses)",
			"Convulsiones o visión borrosa")),
		rule(1, GuardNone, boolCheck("esta_en_tratamiento", true)),
		rule(1, GuardNone, optionsCheck("diabetes_inestabilidad_ESI1",
			"Respiración rápida", "Confusión", "Pérdida del conocimiento",
			"Piel fría/húmeda", "Pulso débil")),
		rule(1, GuardNone, optionsCheck("asma_inestabilidad_ESI1",
			"Labios azulados", "Alteración del estado mental",
			"Incapacidad para caminar por dificultad respiratoria")),
		rule(1, GuardNone, optionsCheck("acv_sintomas_ESI1",
			"Debilidad o entumecimiento repentino en la cara, brazo o pierna",
			"dificultad para hablar",
			"Pérdida de equilibrio",
			"Dolor de cabeza muy fuerte que empezó de repente")),
		rule(1, GuardNone, optionsCheck("ic_sintomas_ESI1",
			"Falta de aire extrema",
			"Bota flema con color rosado o con espuma",
			"Al respirar se escuchan ruidos parecidos a burbujas o chasquidos en el pecho",
			"Piel fría/húmeda",
			"Taquicardia")),
		rule(1, GuardNone, boolCheck("fm_sintomas_ESI1", true)),
		rule(1, GuardNone, boolCheck("hta_sintomas_ESI1", true)),
		rule(1, GuardNone, boolCheck("ec_sintomas_ESI1", true)),
		rule(1, GuardNone, boolCheck("epoc_sintomas_ESI1", true)),
		rule(1, GuardNone, scaleCheck("gravedad_alergia", 6, 7, 8, 9, 10)),
		rule(1, GuardNone, boolCheck("mareo_severo", true)),
		rule(1, GuardNone, boolCheck("escalofrios_severos", true)),
		rule(1, GuardNone, boolCheck("dolor_pecho_opresivo", true)),
		rule(1, GuardNone, boolCheck("habla_entrecortada", true)),
		rule(1, GuardNone, boolCheck("dolor_pecho_quemazon", true)),
		rule(1, GuardNone, boolCheck("dolor_pecho_respirar", true)),
		rule(1, GuardNone, boolCheck("dolor_cabeza_intenso", true)),
		rule(1, GuardNone, boolCheck("perdida_memoria", true)),

		// Level 2: critical urgency.
		rule(2, GuardElderlyOnly, optionsCheck("adulto_mayor_ESI2",
			"Vómitos persistentes",
			"Una caída con posible golpe fuerte o fractura",
			"Confusión repentina o dificultad para pensar claramente",
			"Fiebre acompañada de escalofríos fuertes",
			"Dificultad para comer, beber o moverse por sí mismo")),
		rule(2, GuardPregnantOnly, optionsCheck("sintomas_moderados_embarazo_ESI2",
			"Sangrado leve o pequeñas manchas de sangre",
			"Dolor leve en el vientre que va y viene",
			"Vómitos que no paran",
			"Dolor de cabeza muy fuerte",
			"El bebé se mueve menos de lo normal (si tiene más de 7 meses)",
			"Le han dicho que tiene la presión alta o lo sospecha")),
		rule(2, GuardNone, optionsCheck("diabetes_sintomas_ESI2",
			"Vómitos persistentes", "Dolor abdominal intenso",
			"Deshidratación grave", "Hormigueo intenso")),
		rule(2, GuardNone, optionsCheck("asma_sibilancias_ESI2",
			"Siente silbidos o ruidos en el pecho al respirar",
			"A pesar de usar su inhalador, continúa con dificultad para respirar")),
		rule(2, GuardNone, optionsCheck("acv_sintomas_ESI2",
			"Dificultad para respirar incluso estando quieto",
			"Dolor fuerte en el pecho o en la cabeza",
			"Visión borrosa",
			"Hinchazón en la cara o garganta que le dificulte tragar",
			"Malestar que apareció de forma repentina y no mejora")),
		rule(2, GuardNone, optionsCheck("ic_sintomas_ESI2",
			"Subió de peso rápido y nota que el cuerpo retiene líquidos (hinchazón repentina)",
			"Le falta el aire incluso estando en reposo (sentado o acostado)",
			"Dolor fuerte o presión en el pecho que puede ser de preocupación",
			"Hinchazón muy marcada en piernas o abdomen que le dificulta moverse")),
		rule(2, GuardNone, boolCheck("fm_sintomas_ESI2", true)),
		rule(2, GuardNone, boolCheck("hta_sintomas_ESI23", true)),
		rule(2, GuardNone, boolCheck("ec_sintomas_ESI23", true)),
		rule(2, GuardNone, boolCheck("epoc_sintomas_ESI23", true)),
		rule(2, GuardNone, scaleCheck("gravedad_alergia", 4, 5)),
		rule(2, GuardNone, boolCheck("cianosis", true)),
		rule(2, GuardNone, boolCheck("dolor_opresivo_respirar", true)),
		rule(2, GuardNone, boolCheck("habla_entrecortada", false)),
		rule(2, GuardNone, boolCheck("silbido_respirar", true)),
		rule(2, GuardNone, boolCheck("dolor_pecho_quemazon", false)),
		rule(2, GuardNone, boolCheck("dolor_pecho_respirar", false)),
		rule(2, GuardNone, boolCheck("vomito_sangre", true)),
		rule(2, GuardNone, boolCheck("incapacidad_caminar", true)),
		rule(2, GuardNone, boolCheck("tos_sangre", true)),
		rule(2, GuardNone, boolCheck("dolor_abdomen_postura", true)),
		rule(2, GuardNone, boolCheck("estreñimiento_hinchazón", true)),
		rule(2, GuardNone, boolCheck("vision_alterada", true)),
		rule(2, GuardNone, boolCheck("respiracion_rapida", true)),
		rule(2, GuardNone, boolCheck("alucinaciones", true)),

		// Level 3: non-critical urgency.
		rule(3, GuardElderlyOnly, optionsCheck("adulto_mayor_ESI3",
			"Tos que no mejora", "Cansancio o fatiga constante",
			"Pérdida del apetito", "Dolor leve pero molesto",
			"Sensación de decaimiento o falta de energía")),
		rule(3, GuardPregnantOnly, optionsCheck("sintomas_moderados_embarazo_ESI3",
			"Vómitos o náuseas frecuentes pero no graves",
			"Dolor en la espalda que molesta al caminar o moverse",
			"Cansancio extremo o mucho sueño",
			"Flujo vaginal diferente (color raro, mal olor, más cantidad)")),
		rule(3, GuardNone, optionsCheck("diabetes_sintomas_ESI3",
			"Visión borrosa", "Debilidad extrema", "Fatiga", "Pérdida de peso")),
		rule(3, GuardNone, boolCheck("asma_tos_ESI3", true)),
		rule(3, GuardNone, boolCheck("acv_sintomas_ESI3", true)),
		rule(3, GuardNone, optionsCheck("ic_sintomas_ESI3",
			"Fatiga extrema al caminar",
			"Hinchazón moderada en las piernas que mejora al descansar o al ponerlas en alto",
			"Siente palpitaciones o el corazón acelerado en ocasiones, pero sin otros síntomas")),
		rule(3, GuardNone, boolCheck("fm_sintomas_ESI3", true)),
		rule(3, GuardNone, boolCheck("hta_sintomas_ESI23", false)),
		rule(3, GuardNone, boolCheck("ec_sintomas_ESI23", false)),
		rule(3, GuardNone, boolCheck("epoc_sintomas_ESI23", false)),
		rule(3, GuardNone, scaleCheck("gravedad_alergia", 1, 2, 3)),
		rule(3, GuardNone, boolCheck("dolor_opresivo_respirar", false)),
		rule(3, GuardNone, boolCheck("silbido_respirar", false)),
		rule(3, GuardNone, boolCheck("vomito_sangre", false)),
		rule(3, GuardNone, boolCheck("incapacidad_caminar", false)),
		rule(3, GuardNone, boolCheck("estreñimiento_hinchazón", false)),
		rule(3, GuardNone, boolCheck("vision_alterada", false)),
		rule(3, GuardNone, boolCheck("respiracion_rapida", false)),
		rule(3, GuardNone, boolCheck("alucinaciones", false)),

		// Level 4: priority consultation.
		rule(4, GuardElderlyOnly, optionsCheck("adulto_mayor_ESI45",
			"Dolor localizado y controlable",
			"Necesidad de un medicamento o receta",
			"Exámenes o pruebas que le solicitó su médico",
			"Tiene una herida que desee revisar")),
		rule(4, GuardPregnantOnly, optionsCheck("sintomas_leves_embarazo_ESI4",
			"Náuseas leves o vómitos ocasionales",
			"Dolor leve en la espalda",
			"Cansancio leve o sueño normal",
			"Flujo vaginal normal (sin mal olor ni color extraño)")),
		rule(4, GuardNone, boolCheck("diabetes_sintomas_leves_ESI45", true)),
		rule(4, GuardNone, optionsCheck("asma_leve_ESI45",
			"Tos ocasional que mejora al usar el inhalador",
			"Silbidos o ruidos leves al respirar durante ejercicio o exposición a alérgenos")),
		rule(4, GuardNone, boolCheck("acv_sintomas_ESI45", true)),
		rule(4, GuardNone, optionsCheck("ic_sintomas_ESI45",
			"Hinchazón leve en los tobillos",
			"Su peso se ha mantenido estable, sin subir de golpe",
			"Mejora cuando toma los medicamentos para orinar (diuréticos) que le recetó el médico")),
		rule(4, GuardNone, boolCheck("fm_sintomas_ESI45", true)),
		rule(4, GuardNone, boolCheck("hta_sintomas_ESI45", true)),
		rule(4, GuardNone, boolCheck("ec_sintomas_ESI45", true)),
		rule(4, GuardNone, boolCheck("epoc_sintomas_ESI45", true)),
		rule(4, GuardNone, boolCheck("sintomas_leves", true)),

		// Level 5: outpatient consultation.
		rule(5, GuardElderlyOnly, optionsCheck("adulto_mayor_ESI45", "Ninguna de las anteriores")),
		rule(5, GuardPregnantOnly, optionsCheck("sintomas_leves_embarazo_ESI5",
			"Está embarazada pero se siente bien",
			"Solo quiere información o recomendaciones",
			"Está en control prenatal regular")),
		rule(5, GuardNone, boolCheck("diabetes_sintomas_leves_ESI45", false)),
		rule(5, GuardNone, optionsCheck("asma_leve_ESI45", "Ninguno de los anteriores")),
		rule(5, GuardNone, boolCheck("acv_sintomas_ESI45", false)),
		rule(5, GuardNone, boolCheck("acv_sintomas_ESI3", false)),
		rule(5, GuardNone, optionsCheck("acv_sintomas_ESI2", "Ninguno de los anteriores")),
		rule(5, GuardNone, optionsCheck("ic_sintomas_ESI45", "Ninguno de los anteriores")),
		rule(5, GuardNone, boolCheck("fm_sintomas_ESI45", false)),
		rule(5, GuardNone, boolCheck("hta_sintomas_ESI45", false)),
		rule(5, GuardNone, boolCheck("ec_sintomas_ESI45", false)),
		rule(5, GuardNone, boolCheck("epoc_sintomas_ESI45", false)),
		rule(5, GuardNone, boolCheck("sintomas_leves", false)),
	}
}
