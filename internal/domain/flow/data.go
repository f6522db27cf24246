package flow

// DefaultGraph returns the built-in flow table for the adult pre-triage
// questionnaire. Branch keys are canonical answer keys: "true"/"false"
// for booleans and option labels for choice answers.
func DefaultGraph() Graph {
	return Graph{
		// Pregnancy track.
		"embarazo": {
			OnValue:      map[string]string{"true": "semanas_embarazo"},
			Continuation: "cirugias_previas",
		},
		"semanas_embarazo": {Continuation: "sintomas_graves_embarazo_ESI1"},
		"sintomas_graves_embarazo_ESI1": {
			OnValue: map[string]string{"Ninguna de las anteriores": "sintomas_moderados_embarazo_ESI2"},
		},
		"sintomas_moderados_embarazo_ESI2": {
			OnValue: map[string]string{"Ninguna de las anteriores": "sintomas_moderados_embarazo_ESI3"},
		},
		"sintomas_moderados_embarazo_ESI3": {
			OnValue: map[string]string{"Ninguna de las anteriores": "sintomas_leves_embarazo_ESI4"},
		},
		"sintomas_leves_embarazo_ESI4": {
			OnValue: map[string]string{"Ninguna de las anteriores": "sintomas_leves_embarazo_ESI5"},
		},
		"sintomas_leves_embarazo_ESI5": {},

		// Older-adult track.
		"adulto_mayor_ESI1": {
			OnValue: map[string]string{"Ninguna de las anteriores": "adulto_mayor_ESI2"},
		},
		"adulto_mayor_ESI2": {
			OnValue: map[string]string{"Ninguna de las anteriores": "adulto_mayor_ESI3"},
		},
		"adulto_mayor_ESI3": {
			OnValue: map[string]string{"Ninguna de las anteriores": "adulto_mayor_ESI45"},
		},
		"adulto_mayor_ESI45": {},

		// Medical history.
		"cirugias_previas": {Continuation: "antecedentes_enfermedades_cronicas"},
		// Chronic disease selection also has dynamic handling in the
		// navigator; these branches only cover the simple cases.
		"antecedentes_enfermedades_cronicas": {
			OnValue: map[string]string{
				"Ninguna de las anteriores": "antecedentes_alergias",
				"Cáncer":                    "esta_en_tratamiento",
			},
			Continuation: "antecedentes_alergias",
		},
		"esta_en_tratamiento": {
			OnValue: map[string]string{"false": "antecedentes_alergias"},
		},

		// Per-condition gates.
		"sintoma_relacionado_diabetes": {
			OnValue:      map[string]string{"true": "diabetes_inestabilidad_ESI1"},
			Continuation: "sintoma_relacionado_asma",
		},
		"sintoma_relacionado_asma": {
			OnValue:      map[string]string{"true": "asma_inestabilidad_ESI1"},
			Continuation: "sintoma_relacionado_acv",
		},
		"sintoma_relacionado_acv": {
			OnValue:      map[string]string{"true": "acv_sintomas_ESI1"},
			Continuation: "sintoma_relacionado_insuficiencia_cardiaca",
		},
		"sintoma_relacionado_insuficiencia_cardiaca": {
			OnValue:      map[string]string{"true": "ic_sintomas_ESI1"},
			Continuation: "sintoma_relacionado_fibromialgia",
		},
		"sintoma_relacionado_fibromialgia": {
			OnValue:      map[string]string{"true": "fm_sintomas_ESI1"},
			Continuation: "sintoma_relacionado_hipertension",
		},
		"sintoma_relacionado_hipertension": {
			OnValue:      map[string]string{"true": "hta_inicio"},
			Continuation: "sintoma_relacionado_enfermedad_coronaria",
		},
		"sintoma_relacionado_enfermedad_coronaria": {
			OnValue:      map[string]string{"true": "ec_sintomas_inicio"},
			Continuation: "sintoma_relacionado_epoc",
		},
		"sintoma_relacionado_epoc": {
			OnValue:      map[string]string{"true": "epoc_sintomas_inicio"},
			Continuation: "antecedentes_alergias",
		},

		// Diabetes sub-flow.
		"diabetes_inestabilidad_ESI1": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "diabetes_sintomas_ESI2"},
			Continuation: DynamicNextCondition,
		},
		"diabetes_sintomas_ESI2": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "diabetes_sintomas_ESI3"},
			Continuation: DynamicNextCondition,
		},
		"diabetes_sintomas_ESI3": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "diabetes_sintomas_leves_ESI45"},
			Continuation: DynamicNextCondition,
		},
		"diabetes_sintomas_leves_ESI45": {Continuation: DynamicNextCondition},

		// Asthma sub-flow.
		"asma_inestabilidad_ESI1": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "asma_sibilancias_ESI2"},
			Continuation: DynamicNextCondition,
		},
		"asma_sibilancias_ESI2": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "asma_tos_ESI3"},
			Continuation: DynamicNextCondition,
		},
		"asma_tos_ESI3": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "asma_leve_ESI45"},
			Continuation: DynamicNextCondition,
		},
		"asma_leve_ESI45": {Continuation: DynamicNextCondition},

		// Stroke sub-flow.
		"acv_sintomas_ESI1": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "acv_sintomas_ESI2"},
			Continuation: DynamicNextCondition,
		},
		"acv_sintomas_ESI2": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "acv_sintomas_ESI3"},
			Continuation: DynamicNextCondition,
		},
		"acv_sintomas_ESI3": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "acv_sintomas_ESI45"},
			Continuation: DynamicNextCondition,
		},
		"acv_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// Heart failure sub-flow.
		"ic_sintomas_ESI1": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "ic_sintomas_ESI2"},
			Continuation: DynamicNextCondition,
		},
		"ic_sintomas_ESI2": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "ic_sintomas_ESI3"},
			Continuation: DynamicNextCondition,
		},
		"ic_sintomas_ESI3": {
			OnValue:      map[string]string{"Ninguno de los anteriores": "ic_sintomas_ESI45"},
			Continuation: DynamicNextCondition,
		},
		"ic_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// Hypertension sub-flow.
		"hta_inicio": {
			OnValue: map[string]string{
				"true":  "hta_sintomas_ESI1",
				"false": "hta_sintomas_ESI45",
			},
			Continuation: DynamicNextCondition,
		},
		"hta_sintomas_ESI1": {
			OnValue:      map[string]string{"false": "hta_sintomas_ESI23"},
			Continuation: DynamicNextCondition,
		},
		"hta_sintomas_ESI23": {Continuation: DynamicNextCondition},
		"hta_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// Coronary disease sub-flow.
		"ec_sintomas_inicio": {
			OnValue: map[string]string{
				"true":  "ec_sintomas_ESI1",
				"false": "ec_sintomas_ESI45",
			},
			Continuation: DynamicNextCondition,
		},
		"ec_sintomas_ESI1": {
			OnValue:      map[string]string{"false": "ec_sintomas_ESI23"},
			Continuation: DynamicNextCondition,
		},
		"ec_sintomas_ESI23": {Continuation: DynamicNextCondition},
		"ec_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// COPD sub-flow.
		"epoc_sintomas_inicio": {
			OnValue: map[string]string{
				"true":  "epoc_sintomas_ESI1",
				"false": "epoc_sintomas_ESI45",
			},
			Continuation: DynamicNextCondition,
		},
		"epoc_sintomas_ESI1": {
			OnValue:      map[string]string{"false": "epoc_sintomas_ESI23"},
			Continuation: DynamicNextCondition,
		},
		"epoc_sintomas_ESI23": {Continuation: DynamicNextCondition},
		"epoc_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// Fibromyalgia sub-flow.
		"fm_sintomas_ESI1": {
			OnValue:      map[string]string{"false": "fm_sintomas_ESI2"},
			Continuation: DynamicNextCondition,
		},
		"fm_sintomas_ESI2": {
			OnValue:      map[string]string{"false": "fm_sintomas_ESI3"},
			Continuation: DynamicNextCondition,
		},
		"fm_sintomas_ESI3": {
			OnValue:      map[string]string{"false": "fm_sintomas_ESI45"},
			Continuation: DynamicNextCondition,
		},
		"fm_sintomas_ESI45": {Continuation: DynamicNextCondition},

		// Allergies. A severity rating always ends the questionnaire.
		"antecedentes_alergias": {
			OnValue:      map[string]string{"Ninguna de las anteriores": "mareo_severo"},
			Continuation: "gravedad_alergia",
		},
		"gravedad_alergia": {},

		// General signs and symptoms.
		"mareo_severo": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "escalofrios_severos",
		},
		"escalofrios_severos": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "cianosis",
		},
		"cianosis": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "palpitaciones_rápidas",
		},
		"palpitaciones_rápidas": {
			OnValue:      map[string]string{"true": "dolor_pecho_opresivo"},
			Continuation: "dificultad_respiratoria",
		},
		"dolor_pecho_opresivo": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "dolor_opresivo_respirar",
		},
		"dolor_opresivo_respirar": {},

		// Breathing difficulty.
		"dificultad_respiratoria": {
			OnValue:      map[string]string{"true": "dificultad_respirar_esfuerzo"},
			Continuation: "dolor_pecho",
		},
		"dificultad_respirar_esfuerzo": {
			OnValue: map[string]string{
				"Con esfuerzo mínimo": "silbido_respirar",
				"En reposo":           "habla_entrecortada",
			},
		},
		"habla_entrecortada": {},
		"silbido_respirar":   {},

		// Chest pain.
		"dolor_pecho": {
			OnValue:      map[string]string{"true": "dolor_pecho_sudoracion"},
			Continuation: "dolor_abdominal",
		},
		"dolor_pecho_sudoracion": {
			OnValue:      map[string]string{"true": "dolor_pecho_quemazon"},
			Continuation: "dolor_pecho_respirar",
		},
		"dolor_pecho_quemazon": {},
		"dolor_pecho_respirar": {},

		// Abdominal pain.
		"dolor_abdominal": {
			OnValue:      map[string]string{"true": "dolor_abdominal_intensidad"},
			Continuation: "tos_sangre",
		},
		"dolor_abdominal_intensidad": {
			OnValue:      map[string]string{"true": "incapacidad_caminar"},
			Continuation: "vomito_sangre",
		},
		"vomito_sangre":       {},
		"incapacidad_caminar": {},

		// Bleeding.
		"tos_sangre": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "sintoma_principal",
		},

		// Main symptom branch.
		"sintoma_principal": {
			OnValue: map[string]string{
				"Dolor abdominal":           "dolor_abdomen_postura",
				"Dolor de cabeza":           "dolor_cabeza_intenso",
				"Dificultad respiratoria":   "respiracion_rapida",
				"Ninguno de los anteriores": "confusion",
			},
		},
		"dolor_abdomen_postura": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "estreñimiento_hinchazón",
		},
		"estreñimiento_hinchazón": {},
		"dolor_cabeza_intenso": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "vision_alterada",
		},
		"vision_alterada":    {},
		"respiracion_rapida": {},

		// Mental state.
		"confusion": {
			OnValue:      map[string]string{"true": "perdida_memoria"},
			Continuation: "sintomas_leves",
		},
		"perdida_memoria": {
			OnValue:      map[string]string{"true": ""},
			Continuation: "alucinaciones",
		},
		"alucinaciones": {},

		// Last question of the general flow.
		"sintomas_leves": {},
	}
}
