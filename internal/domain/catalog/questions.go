package catalog

// defaultQuestions is the built-in adult pre-triage questionnaire. The
// prompts and option labels are patient-facing and intentionally kept
// in Spanish; codes are stable identifiers referenced by the flow graph
// and the classification rules.
var defaultQuestions = []Question{
	// Pregnancy track.
	{
		Code: "embarazo",
		Text: "¿Está embarazada?",
		Type: TypeBoolean,
	},
	{
		Code: "semanas_embarazo",
		Text: "¿Cuántas semanas de embarazo tiene?",
		Type: TypeChoice,
		Options: []string{
			"1-4 semanas", "5-8 semanas", "9-13 semanas", "14-17 semanas",
			"18-22 semanas", "23-27 semanas", "28-31 semanas", "32-35 semanas",
			"36-40 semanas",
		},
	},
	{
		Code: "sintomas_graves_embarazo_ESI1",
		Text: "¿Presenta alguno(s) de los siguientes síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Sangrado vaginal muy abundante o con coágulos grandes",
			"Dolor fuerte en el vientre que no se quita",
			"Salida repentina de líquido por la vagina (como si se rompiera una bolsa)",
			"Fiebre alta con escalofríos",
			"Mareo muy fuerte o desmayo",
			"No siente que el bebé se mueva (si tiene más de 5 meses)",
			"Convulsiones o visión borrosa",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "sintomas_moderados_embarazo_ESI2",
		Text: "¿Presenta alguno(s) de los siguientes síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Sangrado leve o pequeñas manchas de sangre",
			"Dolor leve en el vientre que va y viene",
			"Vómitos que no paran",
			"Dolor de cabeza muy fuerte",
			"El bebé se mueve menos de lo normal (si tiene más de 7 meses)",
			"Le han dicho que tiene la presión alta o lo sospecha",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "sintomas_moderados_embarazo_ESI3",
		Text: "¿Presenta alguno(s) de los siguientes síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Vómitos o náuseas frecuentes pero no graves",
			"Dolor en la espalda que molesta al caminar o moverse",
			"Cansancio extremo o mucho sueño",
			"Flujo vaginal diferente (color raro, mal olor, más cantidad)",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "sintomas_leves_embarazo_ESI4",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Náuseas leves o vómitos ocasionales",
			"Dolor leve en la espalda",
			"Cansancio leve o sueño normal",
			"Flujo vaginal normal (sin mal olor ni color extraño)",
			"Picazón o irritación en la piel sin otros síntomas graves",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "sintomas_leves_embarazo_ESI5",
		Text: "Seleccione la(s) opción(es) que le apliquen:",
		Type: TypeMultiChoice,
		Options: []string{
			"Está embarazada pero se siente bien",
			"Solo quiere información o recomendaciones",
			"Está en control prenatal regular",
		},
	},

	// Elderly track.
	{
		Code: "adulto_mayor_ESI1",
		Text: "¿Presenta alguno(s) de los siguientes síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Dificultad para respirar muy fuerte",
			"Dolor en el pecho muy intenso",
			"Confusión o desorientación repentina",
			"Fiebre muy alta junto con debilidad extrema",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "adulto_mayor_ESI2",
		Text: "¿Tiene alguno(s) de estos sintomas repentinos?",
		Type: TypeMultiChoice,
		Options: []string{
			"Vómitos persistentes",
			"Una caída con posible golpe fuerte o fractura",
			"Confusión repentina o dificultad para pensar claramente",
			"Fiebre acompañada de escalofríos fuertes",
			"Dificultad para comer, beber o moverse por sí mismo",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "adulto_mayor_ESI3",
		Text: "¿Ha notado alguno(s) de estos malestares?",
		Type: TypeMultiChoice,
		Options: []string{
			"Tos que no mejora",
			"Cansancio o fatiga constante",
			"Pérdida del apetito",
			"Dolor leve pero molesto",
			"Sensación de decaimiento o falta de energía",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "adulto_mayor_ESI45",
		Text: "¿Viene por algunas de estas razones?",
		Type: TypeMultiChoice,
		Options: []string{
			"Dolor localizado y controlable",
			"Necesidad de un medicamento o receta",
			"Exámenes o pruebas que le solicitó su médico",
			"Tiene una herida que desee revisar",
			"Ninguna de las anteriores",
		},
	},

	// Medical history.
	{
		Code:        "cirugias_previas",
		Text:        "¿Ha tenido cirugías previas? (Describa brevemente cada cirugía y el año aproximado)",
		Type:        TypeText,
		MaxLength:   1000,
		Placeholder: "Ejemplo: Apendicectomía en 2018, Cesárea en 2020...",
	},
	{
		Code: "antecedentes_enfermedades_cronicas",
		Text: "Enfermedades Crónicas (puede seleccionar múltiples opciones)",
		Type: TypeMultiChoice,
		Options: []string{
			"Diabetes 1/2",
			"Asma",
			"Accidente cerebrovascular (ACV)",
			"Insuficiencia cardíaca",
			"Fibromialgia",
			"Hipertensión arterial",
			"Enfermedad coronaria",
			"Enfermedad pulmonar obstructiva crónica (EPOC)",
			"Cáncer",
			"Otro (especificar)",
			"Ninguna de las anteriores",
		},
	},
	{
		Code: "esta_en_tratamiento",
		Text: "¿Se encuentra en en tratamiento oncológico o hematologico?",
		Type: TypeBoolean,
	},

	// Per-condition gate questions.
	{
		Code: "sintoma_relacionado_diabetes",
		Text: "¿Presenta algún síntoma relacionado con su Diabetes?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_asma",
		Text: "¿Presenta algún síntoma relacionado con su Asma?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_acv",
		Text: "¿Presenta algún síntoma relacionado con su Accidente Cerebrovascular (ACV)?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_insuficiencia_cardiaca",
		Text: "¿Presenta algún síntoma relacionado con su Insuficiencia Cardíaca?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_fibromialgia",
		Text: "¿Presenta algún síntoma relacionado con su Fibromialgia?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_hipertension",
		Text: "¿Presenta algún síntoma relacionado con su Hipertensión Arterial?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_enfermedad_coronaria",
		Text: "¿Presenta algún síntoma relacionado con su Enfermedad Coronaria?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_relacionado_epoc",
		Text: "¿Presenta algún síntoma relacionado con su EPOC?",
		Type: TypeBoolean,
	},

	// Allergies.
	{
		Code: "antecedentes_alergias",
		Text: "¿A qué es alérgico(a)?",
		Type: TypeChoice,
		Options: []string{
			"A ciertos alimentos (me da picazón, hinchazón, ronchas o vómito, y en casos graves falta de aire)",
			"Al polvo, polen o pelo de animales (me da estornudos, tos, nariz tapada, picazón en ojos o falta de aire en casos graves)",
			"A medicamentos (me da ronchas, hinchazón, falta de aire o en casos graves reacción fuerte/choque)",
			"A picaduras de insectos (como abejas o avispas, me da dolor, hinchazón, ronchas o falta de aire en casos graves)",
			"Al tocar ciertos materiales (como metales, látex, cosméticos o plantas, me da enrojecimiento, picazón o ronchas en la piel)",
			"Ninguna de las anteriores",
		},
	},
	{
		Code:     "gravedad_alergia",
		Text:     "En una escala del 1 al 10, ¿qué tan grave considera que es su alergia?",
		Type:     TypeScale,
		ScaleMin: 1,
		ScaleMax: 10,
	},

	// Diabetes sub-flow.
	{
		Code: "diabetes_inestabilidad_ESI1",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Respiración rápida", "Confusión", "Pérdida del conocimiento",
			"Piel fría/húmeda", "Pulso débil", "Ninguno de los anteriores",
		},
	},
	{
		Code: "diabetes_sintomas_ESI2",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Vómitos persistentes", "Dolor abdominal intenso", "Deshidratación grave",
			"Hormigueo intenso", "Ninguno de los anteriores",
		},
	},
	{
		Code: "diabetes_sintomas_ESI3",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Visión borrosa", "Debilidad extrema", "Fatiga", "Pérdida de peso",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "diabetes_sintomas_leves_ESI45",
		Text: "¿Presenta hambre aumentada o irritabilidad leve?",
		Type: TypeBoolean,
	},

	// Asthma sub-flow.
	{
		Code: "asma_inestabilidad_ESI1",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Labios azulados", "Alteración del estado mental",
			"Incapacidad para caminar por dificultad respiratoria",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "asma_sibilancias_ESI2",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Siente silbidos o ruidos en el pecho al respirar",
			"A pesar de usar su inhalador, continúa con dificultad para respirar",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "asma_tos_ESI3",
		Text: "¿Presenta tos, o necesidad de usar inhalador más de dos veces por semana?",
		Type: TypeBoolean,
	},
	{
		Code: "asma_leve_ESI45",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Tos ocasional que mejora al usar el inhalador",
			"Silbidos o ruidos leves al respirar durante ejercicio o exposición a alérgenos",
			"Ninguno de los anteriores",
		},
	},

	// Stroke sub-flow.
	{
		Code: "acv_sintomas_ESI1",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Debilidad o entumecimiento repentino en la cara, brazo o pierna",
			"dificultad para hablar",
			"Pérdida de equilibrio",
			"Dolor de cabeza muy fuerte que empezó de repente",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "acv_sintomas_ESI2",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Dificultad para respirar incluso estando quieto",
			"Dolor fuerte en el pecho o en la cabeza",
			"Visión borrosa",
			"Hinchazón en la cara o garganta que le dificulte tragar",
			"Malestar que apareció de forma repentina y no mejora",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "acv_sintomas_ESI3",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Dolor de cabeza o mareo continuos",
			"Fiebre con escalofríos",
			"Dolor en el pecho cuando respira",
			"Vómitos",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "acv_sintomas_ESI45",
		Text: "¿Lo que siente ahora es una molestia leve, como dolor de cabeza o mareo ocasional, que no le impide realizar sus actividades?",
		Type: TypeBoolean,
	},

	// Heart failure sub-flow.
	{
		Code: "ic_sintomas_ESI1",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Falta de aire extrema",
			"Bota flema con color rosado o con espuma",
			"Al respirar se escuchan ruidos parecidos a burbujas o chasquidos en el pecho",
			"Piel fría/húmeda",
			"Taquicardia",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "ic_sintomas_ESI2",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Subió de peso rápido y nota que el cuerpo retiene líquidos (hinchazón repentina)",
			"Le falta el aire incluso estando en reposo (sentado o acostado)",
			"Dolor fuerte o presión en el pecho que puede ser de preocupación",
			"Hinchazón muy marcada en piernas o abdomen que le dificulta moverse",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "ic_sintomas_ESI3",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Fatiga extrema al caminar",
			"Hinchazón moderada en las piernas que mejora al descansar o al ponerlas en alto",
			"Siente palpitaciones o el corazón acelerado en ocasiones, pero sin otros síntomas",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "ic_sintomas_ESI45",
		Text: "¿Presenta alguno(s) de estos síntomas?",
		Type: TypeMultiChoice,
		Options: []string{
			"Hinchazón leve en los tobillos",
			"Su peso se ha mantenido estable, sin subir de golpe",
			"Mejora cuando toma los medicamentos para orinar (diuréticos) que le recetó el médico",
			"Ninguno de los anteriores",
		},
	},

	// Fibromyalgia sub-flow.
	{
		Code: "fm_sintomas_ESI1",
		Text: "¿Presenta un dolor intenso en todo el cuerpo que no le permite moverse, fatiga tan fuerte que apenas puede mantenerse despierto, o problemas de memoria y concentración que le impiden comunicarse o realizar actividades básicas?",
		Type: TypeBoolean,
	},
	{
		Code: "fm_sintomas_ESI2",
		Text: "¿Ahora mismo su dolor, el cansancio o los problemas de sueño son tan intensos que, aunque puede hablar o moverse se siente inestable?",
		Type: TypeBoolean,
	},
	{
		Code: "fm_sintomas_ESI3",
		Text: "¿En este momento presenta dolor en varias partes del cuerpo junto con cansancio o falta de concentración, que le dificultan hacer sus actividades normales y lo hacen sentir incómodo a lo largo del día?",
		Type: TypeBoolean,
	},
	{
		Code: "fm_sintomas_ESI45",
		Text: "¿Lo que siente ahora es un dolor localizado, cansancio leve o problemas de sueño que le molestan, pero que no le impiden caminar, hablar ni realizar sus actividades cotidianas?",
		Type: TypeBoolean,
	},

	// Hypertension sub-flow.
	{
		Code: "hta_inicio",
		Text: "¿Tiene dolor de cabeza o visión borrosa?",
		Type: TypeBoolean,
	},
	{
		Code: "hta_sintomas_ESI1",
		Text: "¿Ve manchas o lucecitas?",
		Type: TypeBoolean,
	},
	{
		Code: "hta_sintomas_ESI23",
		Text: "¿Le duele la cabeza como nunca antes?",
		Type: TypeBoolean,
	},
	{
		Code: "hta_sintomas_ESI45",
		Text: "¿Tiene mareo severo?",
		Type: TypeBoolean,
	},

	// Coronary disease sub-flow.
	{
		Code: "ec_sintomas_inicio",
		Text: "¿Dolor en pecho como peso que irradia a brazo/mandíbula?",
		Type: TypeBoolean,
	},
	{
		Code: "ec_sintomas_ESI1",
		Text: "¿Siente que un elefante le pisó el pecho?",
		Type: TypeBoolean,
	},
	{
		Code: "ec_sintomas_ESI23",
		Text: "¿El dolor le llega hasta el cuello/brazo?",
		Type: TypeBoolean,
	},
	{
		Code: "ec_sintomas_ESI45",
		Text: "¿Dolor opresivo con sudor frío?",
		Type: TypeBoolean,
	},

	// COPD sub-flow.
	{
		Code: "epoc_sintomas_inicio",
		Text: "¿Labios/uñas azules y no puede hablar?",
		Type: TypeBoolean,
	},
	{
		Code: "epoc_sintomas_ESI1",
		Text: "¿Al respirar hace sonido de pitillo?",
		Type: TypeBoolean,
	},
	{
		Code: "epoc_sintomas_ESI23",
		Text: "¿Tose como si tuviera pegamento en los pulmones?",
		Type: TypeBoolean,
	},
	{
		Code: "epoc_sintomas_ESI45",
		Text: "¿Siente silbidos al respirar y flemas verdes/amarillas?",
		Type: TypeBoolean,
	},

	// General signs and symptoms.
	{
		Code: "mareo_severo",
		Text: "¿Ha sentido mareos tan fuertes que casi pierde el equilibrio o se cae al ponerse de pie?",
		Type: TypeBoolean,
	},
	{
		Code: "escalofrios_severos",
		Text: "¿Ha sentido escalofríos tan intensos que todo su cuerpo tiembla?",
		Type: TypeBoolean,
	},
	{
		Code: "cianosis",
		Text: "¿Ha notado que sus labios o uñas se ponen morados?",
		Type: TypeBoolean,
	},
	{
		Code: "palpitaciones_rápidas",
		Text: "¿Ha sentido que su corazón late muy rápido o con mucha fuerza incluso cuando está en reposo?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_pecho_opresivo",
		Text: "¿Ha sentido que su pecho está apretado u oprimido?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_opresivo_respirar",
		Text: "¿Ha notado que el dolor empeora cuando respira?",
		Type: TypeBoolean,
	},
	{
		Code: "dificultad_respiratoria",
		Text: "¿Experimenta sensación de ahogo o falta de aire?",
		Type: TypeBoolean,
	},
	{
		Code:    "dificultad_respirar_esfuerzo",
		Text:    "¿Experimenta esta sensación en reposo o al realizar un esfuerzo mínimo?",
		Type:    TypeChoice,
		Options: []string{"En reposo", "Con esfuerzo mínimo"},
	},
	{
		Code: "habla_entrecortada",
		Text: "¿Al hablar, tiene que parar para tomar aire entre cada 2-3 palabras para respirar?",
		Type: TypeBoolean,
	},
	{
		Code: "silbido_respirar",
		Text: "¿Al respirar hace un silbido como de asma?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_pecho",
		Text: "¿Tiene dolor en el pecho?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_pecho_sudoracion",
		Text: "¿Con sudoración fría o irradiación?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_pecho_quemazon",
		Text: "¿Ha sentido que el dolor en el pecho se percibe como un peso aplastante o una sensación de quemazón?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_pecho_respirar",
		Text: "¿El dolor empeora al respirar?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_abdominal",
		Text: "¿Tiene dolor abdominal intenso o vómitos?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_abdominal_intensidad",
		Text: "¿El dolor es tan fuerte que no encuentra alguna posición cómoda?",
		Type: TypeBoolean,
	},
	{
		Code: "incapacidad_caminar",
		Text: "¿Ha experimentado alguna dificultad o incapacidad para caminar?",
		Type: TypeBoolean,
	},
	{
		Code: "vomito_sangre",
		Text: "¿Ha tenido vómitos que contengan sangre o que se vean muy oscuros?",
		Type: TypeBoolean,
	},
	{
		Code: "tos_sangre",
		Text: "¿Ha tosido sangre o flemas con sangre recientemente?",
		Type: TypeBoolean,
	},
	{
		Code: "sintoma_principal",
		Text: "¿Qué síntoma principal tiene?",
		Type: TypeChoice,
		Options: []string{
			"Dificultad respiratoria", "Dolor abdominal", "Dolor de cabeza",
			"Ninguno de los anteriores",
		},
	},
	{
		Code: "dolor_abdomen_postura",
		Text: "¿El dolor es tan fuerte que no puede pararse derecho?",
		Type: TypeBoolean,
	},
	{
		Code: "estreñimiento_hinchazón",
		Text: "¿Ha dejado de ir al baño por más de 3 días con hinchazón?",
		Type: TypeBoolean,
	},
	{
		Code: "dolor_cabeza_intenso",
		Text: "¿Ha tenido un dolor de cabeza tan intenso que lo considera el peor que ha sentido en su vida?",
		Type: TypeBoolean,
	},
	{
		Code: "vision_alterada",
		Text: "¿Ha visto destellos de luz o ha perdido la visión por unos segundos?",
		Type: TypeBoolean,
	},
	{
		Code: "respiracion_rapida",
		Text: "¿Su respiración se ha acelerado más de lo habitual últimamente?",
		Type: TypeBoolean,
	},
	{
		Code: "confusion",
		Text: "¿Ha sentido confusión o dificultad para pensar con claridad?",
		Type: TypeBoolean,
	},
	{
		Code: "perdida_memoria",
		Text: "¿Ha tenido momentos en los que no recuerda lo que hizo?",
		Type: TypeBoolean,
	},
	{
		Code: "alucinaciones",
		Text: "¿Ha visto luces, destellos o formas que otras personas no pueden ver?",
		Type: TypeBoolean,
	},
	{
		Code: "sintomas_leves",
		Text: "¿Tiene síntomas leves (tos, dolor de garganta, diarrea)?",
		Type: TypeBoolean,
	},
}
