package questionnaire

import (
	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/validation"
)

// Victim form steps, in visit order.
const (
	VictimStepVisitInfo    = "visit_info"
	VictimStepPersonalData = "personal_data"
	VictimStepViolenceInfo = "violence_info"
	VictimStepAuthorInfo   = "author_info"
)

var victimSteps = []form.Step{
	{ID: VictimStepVisitInfo, Title: "Informações da Visita", Icon: "clock"},
	{ID: VictimStepPersonalData, Title: "Dados Pessoais", Icon: "user"},
	{ID: VictimStepViolenceInfo, Title: "Informações sobre Violência", Icon: "shield"},
	{ID: VictimStepAuthorInfo, Title: "Informações do Autor", Icon: "file-text"},
}

var victimAttendanceTypes = []string{
	"PRESENCIAL",
	"PRESENCIAL NA RESIDÊNCIA",
	"PRESENCIAL NO LOCAL DE TRABALHO",
	"POR TELEFONE",
	"NÃO REALIZADA EM VIRTUDE DE AUSÊNCIA DA VÍTIMA",
	"Outro",
}

var lastContactPeriods = []string{
	"UM A SETE DIAS",
	"UMA A DUAS SEMANAS",
	"DUAS SEMANAS A UM MÊS",
	"UM A SEIS MESES",
	"UM ANO OU MAIS",
}

var victimRelationships = []string{
	"MARIDO", "EX CÔNJUGE", "NAMORADO", "FILHO", "IRMÃO", "PADRASTO", "PAI", "EX NAMORADO", "Outro",
}

var housingConditions = []string{"ALUGADA", "CEDIDA", "PRÓPRIA", "PRÓPRIA DE TERCEIROS", "Outro"}

var employmentStatuses = []string{"EMPREGADO", "DESEMPREGADO", "AUTÔNOMO", "APOSENTADO", "Outro"}

var victimFields = map[string][]Field{
	VictimStepVisitInfo: {
		{Name: "victimPresence", Label: "Presença da Vítima", Kind: KindSelect, Options: presenceOptions},
		{Name: "otherVictimPresence", Label: "Especificar Presença", Kind: KindText, ShowWhen: eqString("victimPresence", "Outro")},
		{Name: "attendanceType", Label: "Tipo de Atendimento", Kind: KindSelect, Options: victimAttendanceTypes},
		{Name: "otherAttendanceType", Label: "Especificar Atendimento", Kind: KindText, ShowWhen: eqString("attendanceType", "Outro")},
		{Name: "newAddress", Label: "Novo Endereço", Kind: KindText, ShowWhen: eqString("victimPresence", "MUDANÇA DE ENDEREÇO")},
		{Name: "neighborhood", Label: "Bairro", Kind: KindText},
		{Name: "municipality", Label: "Município", Kind: KindSelect, Options: municipalities},
		{Name: "otherMunicipality", Label: "Especificar Município", Kind: KindText, ShowWhen: eqString("municipality", "Outro")},
		{Name: "visitingUnit", Label: "Unidade de Visita", Kind: KindSelect, Options: visitingUnits},
		{Name: "visitDate", Label: "Data da Visita", Kind: KindDate},
		{Name: "visitTime", Label: "Hora da Visita", Kind: KindTime},
	},
	VictimStepPersonalData: {
		{Name: "victimName", Label: "Nome da Vítima", Kind: KindText},
		{Name: "birthDate", Label: "Data de Nascimento", Kind: KindDate},
		{Name: "rg", Label: "RG", Kind: KindText},
		{Name: "cpf", Label: "CPF", Kind: KindText},
		{Name: "maritalStatus", Label: "Estado Civil", Kind: KindSelect, Options: maritalStatuses},
		{Name: "hasChildren", Label: "Possui filhos?", Kind: KindBool},
		{Name: "childrenLivingWith", Label: "Filhos que moram com a vítima", Kind: KindNumber, ShowWhen: isTrue("hasChildren")},
		{Name: "childrenLivingWithYou", Label: "Filhos que moram com você", Kind: KindNumber, ShowWhen: isTrue("hasChildren")},
		{Name: "housingCondition", Label: "Condição de Moradia", Kind: KindSelect, Options: housingConditions},
		{Name: "otherHousingCondition", Label: "Especificar Condição de Moradia", Kind: KindText, ShowWhen: eqString("housingCondition", "Outro")},
		{Name: "familyIncome", Label: "Renda Familiar", Kind: KindSelect, Options: append(append([]string{}, incomeOptions...), "Outro")},
		{Name: "hasCriminalRecord", Label: "Possui antecedentes criminais?", Kind: KindBool},
		{Name: "substanceUse", Label: "Consome álcool/drogas?", Kind: KindBool},
		{Name: "substanceDetails", Label: "Qual substância?", Kind: KindText, ShowWhen: isTrue("substanceUse")},
	},
	VictimStepViolenceInfo: {
		{Name: "relationshipWithAuthor", Label: "Grau de Parentesco com o Autor", Kind: KindSelect, Options: victimRelationships},
		{Name: "otherRelationshipWithAuthor", Label: "Especificar Relacionamento", Kind: KindText, ShowWhen: eqString("relationshipWithAuthor", "Outro")},
		{Name: "violenceTypes", Label: "Tipos de Violência Sofrida", Kind: KindMultiSelect, Options: violenceTypes},
		{Name: "hasViolenceMarks", Label: "Apresenta marcas de violência?", Kind: KindBool},
		{Name: "currentViolenceTypes", Label: "Tipos de Violência Atual", Kind: KindMultiSelect, Options: violenceTypes, ShowWhen: isTrue("hasViolenceMarks")},
		{Name: "authorNotified", Label: "Autor foi notificado sobre medidas protetivas?", Kind: KindBool},
		{Name: "protectiveMeasuresComplied", Label: "Medidas protetivas estão sendo cumpridas?", Kind: KindBool},
		{Name: "nonComplianceDetails", Label: "Como as medidas estão sendo descumpridas?", Kind: KindTextArea, ShowWhen: isFalse("protectiveMeasuresComplied")},
		{Name: "contactFrequency", Label: "Frequência de Contato com o Autor", Kind: KindSelect, Options: contactFrequency},
		{Name: "lastContactPeriod", Label: "Período do Último Contato", Kind: KindSelect, Options: lastContactPeriods},
	},
	VictimStepAuthorInfo: {
		{Name: "authorName", Label: "Nome do Autor", Kind: KindText},
		{Name: "authorAddress", Label: "Endereço do Autor", Kind: KindText},
		{Name: "authorPerimeter", Label: "Perímetro", Kind: KindText},
		{Name: "authorGender", Label: "Sexo do Autor", Kind: KindSelect, Options: genderOptions},
		{Name: "authorEmploymentStatus", Label: "Situação Ocupacional do Autor", Kind: KindSelect, Options: employmentStatuses},
		{Name: "authorHasCriminalRecord", Label: "Autor possui antecedentes criminais?", Kind: KindBool},
		{Name: "authorHasBeenArrested", Label: "Autor já foi preso?", Kind: KindBool},
		{Name: "authorAlcoholUse", Label: "Autor faz ou já fez uso de álcool?", Kind: KindBool},
		{Name: "authorAlcoholUseFrequency", Label: "Frequência do Uso de Álcool", Kind: KindSelect, Options: useFrequencies, ShowWhen: isTrue("authorAlcoholUse")},
		{Name: "authorChemicalDependencyTreatment", Label: "Tratamento para dependência química?", Kind: KindBool},
		{Name: "authorMentalDisorder", Label: "Possui transtorno mental?", Kind: KindBool},
		{Name: "authorControlledMedicationUse", Label: "Usa medicação controlada?", Kind: KindBool},
		{Name: "authorNotifiedAboutProtectiveMeasures", Label: "Autor foi notificado sobre as medidas protetivas?", Kind: KindBool},
		{Name: "generalObservations", Label: "Observações Gerais", Kind: KindTextArea},
	},
}

// Boolean flags default to false when a step is first shown so that leaving
// them unticked still counts as an informed answer.
var victimDefaults = map[string]map[string]any{
	VictimStepPersonalData: {
		"hasChildren":       false,
		"hasCriminalRecord": false,
		"substanceUse":      false,
	},
	VictimStepViolenceInfo: {
		"authorNotified":             false,
		"protectiveMeasuresComplied": false,
		"hasViolenceMarks":           false,
	},
	VictimStepAuthorInfo: {
		"authorHasCriminalRecord":               false,
		"authorHasBeenArrested":                 false,
		"authorAlcoholUse":                      false,
		"authorChemicalDependencyTreatment":     false,
		"authorMentalDisorder":                  false,
		"authorControlledMedicationUse":         false,
		"authorNotifiedAboutProtectiveMeasures": false,
	},
}

var victimRules = map[string]ruleSpec{
	VictimStepVisitInfo: {
		required: []validation.Required{
			{Field: "victimPresence", Message: "Presença da vítima é obrigatória"},
			{Field: "attendanceType", Message: "Tipo de atendimento é obrigatório"},
			{Field: "municipality", Message: "Município é obrigatório"},
			{Field: "visitDate", Message: "Data da visita é obrigatória"},
			{Field: "visitTime", Message: "Hora da visita é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "otherVictimPresence", trigger: "victimPresence", when: eqString("victimPresence", "Outro")},
			{field: "otherAttendanceType", trigger: "attendanceType", when: eqString("attendanceType", "Outro")},
			{field: "newAddress", trigger: "victimPresence", when: eqString("victimPresence", "MUDANÇA DE ENDEREÇO")},
			{field: "otherMunicipality", trigger: "municipality", when: eqString("municipality", "Outro")},
		},
	},
	VictimStepPersonalData: {
		required: []validation.Required{
			{Field: "victimName", Message: "Nome da vítima é obrigatório"},
			{Field: "birthDate", Message: "Data de nascimento é obrigatória"},
			{Field: "hasChildren", Message: "Informação sobre filhos é obrigatória"},
			{Field: "housingCondition", Message: "Condição de moradia é obrigatória"},
			{Field: "substanceUse", Message: "Informação sobre uso de substâncias é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "otherHousingCondition", trigger: "housingCondition", when: eqString("housingCondition", "Outro")},
			{field: "substanceDetails", trigger: "substanceUse", when: isTrue("substanceUse")},
		},
	},
	VictimStepViolenceInfo: {
		required: []validation.Required{
			{Field: "protectiveMeasuresComplied", Message: "Informação sobre cumprimento de medidas protetivas é obrigatória"},
			{Field: "contactFrequency", Message: "Frequência de contato é obrigatória"},
			{Field: "lastContactPeriod", Message: "Período do último contato é obrigatório"},
			{Field: "hasViolenceMarks", Message: "Informação sobre marcas de violência é obrigatória"},
			{Field: "relationshipWithAuthor", Message: "Relacionamento com autor é obrigatório"},
		},
		conditional: []conditionalSpec{
			{field: "nonComplianceDetails", trigger: "protectiveMeasuresComplied", when: isFalse("protectiveMeasuresComplied")},
			{field: "currentViolenceTypes", trigger: "hasViolenceMarks", when: isTrue("hasViolenceMarks")},
			{field: "otherRelationshipWithAuthor", trigger: "relationshipWithAuthor", when: eqString("relationshipWithAuthor", "Outro")},
		},
	},
	VictimStepAuthorInfo: {
		required: []validation.Required{
			{Field: "authorName", Message: "Nome do autor é obrigatório"},
			{Field: "authorAddress", Message: "Endereço do autor é obrigatório"},
			{Field: "authorPerimeter", Message: "Perímetro do autor é obrigatório"},
			{Field: "authorGender", Message: "Sexo do autor é obrigatório"},
			{Field: "authorEmploymentStatus", Message: "Situação ocupacional do autor é obrigatória"},
			{Field: "authorHasCriminalRecord", Message: "Informação sobre antecedentes do autor é obrigatória"},
			{Field: "authorHasBeenArrested", Message: "Informação sobre prisão do autor é obrigatória"},
			{Field: "authorAlcoholUse", Message: "Informação sobre uso de álcool do autor é obrigatória"},
			{Field: "authorChemicalDependencyTreatment", Message: "Informação sobre tratamento do autor é obrigatória"},
			{Field: "authorMentalDisorder", Message: "Informação sobre transtorno mental do autor é obrigatória"},
			{Field: "authorControlledMedicationUse", Message: "Informação sobre medicação controlada do autor é obrigatória"},
			{Field: "authorNotifiedAboutProtectiveMeasures", Message: "Informação sobre notificação do autor é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "authorAlcoholUseFrequency", trigger: "authorAlcoholUse", when: isTrue("authorAlcoholUse")},
		},
	},
}
