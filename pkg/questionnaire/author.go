package questionnaire

import (
	"github.com/guardia-pa/guardia/pkg/form"
	"github.com/guardia-pa/guardia/pkg/validation"
)

// Author form steps, in visit order.
const (
	AuthorStepVisitProcessInfo    = "visit_process_info"
	AuthorStepPersonalData        = "personal_data"
	AuthorStepAddressRelationship = "address_relationship"
	AuthorStepSubstanceBehavior   = "substance_behavior"
	AuthorStepProtectiveMeasures  = "protective_measures"
)

var authorSteps = []form.Step{
	{ID: AuthorStepVisitProcessInfo, Title: "Informações da Visita", Icon: "clock"},
	{ID: AuthorStepPersonalData, Title: "Dados Pessoais", Icon: "user"},
	{ID: AuthorStepAddressRelationship, Title: "Endereço & Relacionamento", Icon: "map-pin"},
	{ID: AuthorStepSubstanceBehavior, Title: "Substâncias & Comportamento", Icon: "shield"},
	{ID: AuthorStepProtectiveMeasures, Title: "Medidas Protetivas", Icon: "file-text"},
}

var authorAttendanceTypes = []string{
	"PRESENCIAL NA RESIDÊNCIA",
	"PRESENCIAL NO LOCAL DE TRABALHO",
	"PRESENCIAL EM LOCAL NEUTRO",
	"POR TELEFONE",
	"ATENDIMENTO NÃO REALIZADO EM VIRTUDE DE NÃO LOCALIZAÇÃO DO AUTOR",
	"Outro",
}

var (
	ethnicities     = []string{"BRANCA", "NEGRA", "PARDA", "ORIENTAL", "INDÍGENA"}
	educationLevels = []string{
		"ENSINO FUNDAMENTAL INCOMPLETO",
		"ENSINO FUNDAMENTAL COMPLETO",
		"ENSINO MÉDIO INCOMPLETO",
		"ENSINO MÉDIO COMPLETO",
		"ENSINO SUPERIOR INCOMPLETO",
		"ENSINO SUPERIOR COMPLETO",
	}
	authorRelationships = []string{
		"ESPOSA", "EX CÔNJUGE", "NAMORADA", "FILHA", "IRMÃ", "MADRASTA", "MÃE", "EX NAMORADA", "Outro",
	}
	familyCourts = []string{"4ª VVDF - ANANINDEUA"}
)

var authorFields = map[string][]Field{
	AuthorStepVisitProcessInfo: {
		{Name: "authorPresence", Label: "Presença do Autor", Kind: KindSelect, Options: presenceOptions},
		{Name: "otherAuthorPresence", Label: "Especificar Presença", Kind: KindText, ShowWhen: eqString("authorPresence", "Outro")},
		{Name: "attendanceType", Label: "Tipo de Atendimento", Kind: KindSelect, Options: authorAttendanceTypes},
		{Name: "otherAttendanceType", Label: "Especificar Atendimento", Kind: KindText, ShowWhen: eqString("attendanceType", "Outro")},
		{Name: "visitingUnit", Label: "Unidade que realizou a visita", Kind: KindSelect, Options: visitingUnits},
		{Name: "varaFamily", Label: "Vara Familiar", Kind: KindSelect, Options: familyCourts},
		{Name: "numberProcess", Label: "Número do processo", Kind: KindText},
		{Name: "visitDate", Label: "Data da Visita", Kind: KindDate},
		{Name: "visitTime", Label: "Horário da Visita", Kind: KindTime},
	},
	AuthorStepPersonalData: {
		{Name: "authorName", Label: "Nome do Autor", Kind: KindText},
		{Name: "victimName", Label: "Nome da Vítima", Kind: KindText},
		{Name: "authorBirthDate", Label: "Data de Nascimento do Autor", Kind: KindDate},
		{Name: "authorRG", Label: "RG do Autor", Kind: KindText},
		{Name: "authorCPF", Label: "CPF do Autor", Kind: KindText},
		{Name: "authorGender", Label: "Sexo", Kind: KindSelect, Options: genderOptions},
		{Name: "authorEthnicity", Label: "Etnia/Cor", Kind: KindSelect, Options: ethnicities},
		{Name: "authorEducationLevel", Label: "Grau de Escolaridade", Kind: KindSelect, Options: educationLevels},
		{Name: "authorMaritalStatus", Label: "Estado Civil", Kind: KindSelect, Options: maritalStatuses},
		{Name: "authorEmployed", Label: "O autor trabalha?", Kind: KindBool},
		{Name: "authorIncome", Label: "Renda Familiar", Kind: KindSelect, Options: incomeOptions},
	},
	AuthorStepAddressRelationship: {
		{Name: "authorAddress", Label: "Endereço", Kind: KindText},
		{Name: "authorNeighborhood", Label: "Bairro", Kind: KindText},
		{Name: "authorMunicipality", Label: "Município", Kind: KindSelect, Options: municipalities},
		{Name: "otherMunicipality", Label: "Especificar Município", Kind: KindText, ShowWhen: eqString("authorMunicipality", "Outro")},
		{Name: "relationshipWithVictim", Label: "Grau de Parentesco com a Vítima", Kind: KindSelect, Options: authorRelationships},
		{Name: "hasChildrenWithVictim", Label: "Possui filhos com a vítima?", Kind: KindBool},
		{Name: "numberOfChildrenWithVictim", Label: "Quantos filhos?", Kind: KindNumber, ShowWhen: isTrue("hasChildrenWithVictim")},
		{Name: "residesNearVictim", Label: "Reside próximo da vítima?", Kind: KindBool},
		{Name: "authorOrFamilyNearVictim", Label: "Autor ou familiares próximos da vítima?", Kind: KindBool},
	},
	AuthorStepSubstanceBehavior: {
		{Name: "substanceUse", Label: "Consome álcool/drogas?", Kind: KindBool},
		{Name: "substanceDetails", Label: "Qual substância?", Kind: KindText, ShowWhen: isTrue("substanceUse")},
		{Name: "alcoholUse", Label: "Já fez/faz uso de álcool?", Kind: KindBool},
		{Name: "alcoholUseFrequency", Label: "Frequência do Uso de Álcool", Kind: KindSelect, Options: useFrequencies, ShowWhen: isTrue("alcoholUse")},
		{Name: "drugUse", Label: "Uso de drogas?", Kind: KindBool},
		{Name: "drugDetails", Label: "Tipo de droga", Kind: KindText, ShowWhen: isTrue("drugUse")},
		{Name: "drugUseFrequency", Label: "Frequência do Uso de Drogas", Kind: KindSelect, Options: useFrequencies[:4], ShowWhen: isTrue("drugUse")},
		{Name: "chemicalDependencyTreatment", Label: "Tratamento para dependência química?", Kind: KindBool},
		{Name: "mentalDisorders", Label: "Transtornos mentais?", Kind: KindBool},
		{Name: "hasCriminalRecord", Label: "Antecedentes criminais?", Kind: KindBool},
		{Name: "hasBeenArrested", Label: "Já foi preso?", Kind: KindBool},
	},
	AuthorStepProtectiveMeasures: {
		{Name: "protectiveMeasuresComplied", Label: "Medidas protetivas estão sendo cumpridas?", Kind: KindBool},
		{Name: "nonComplianceDetails", Label: "Como estão sendo descumpridas?", Kind: KindTextArea, ShowWhen: isFalse("protectiveMeasuresComplied")},
		{Name: "lastContactDate", Label: "Data do Último Contato", Kind: KindDate},
		{Name: "contactFrequency", Label: "Frequência do contato", Kind: KindSelect, Options: useFrequencies[:4]},
		{Name: "lastContactWithVictimDate", Label: "Data do Último Contato com a Vítima", Kind: KindDate},
		{Name: "notifiedAboutProtectiveMeasures", Label: "Autor foi notificado sobre as medidas protetivas?", Kind: KindBool},
		{Name: "complyingWithProtectiveMeasures", Label: "Cumpre inteiramente as medidas?", Kind: KindBool, ShowWhen: isTrue("notifiedAboutProtectiveMeasures")},
		{Name: "agreesWithQuestionnaire", Label: "Concorda com o teor do questionário?", Kind: KindBool},
		{Name: "generalObservations", Label: "Observações gerais", Kind: KindTextArea},
	},
}

var authorDefaults = map[string]map[string]any{
	AuthorStepPersonalData: {
		"authorEmployed": false,
	},
	AuthorStepAddressRelationship: {
		"hasChildrenWithVictim":    false,
		"residesNearVictim":        false,
		"authorOrFamilyNearVictim": false,
	},
	AuthorStepSubstanceBehavior: {
		"substanceUse":                false,
		"alcoholUse":                  false,
		"drugUse":                     false,
		"chemicalDependencyTreatment": false,
		"mentalDisorders":             false,
		"hasCriminalRecord":           false,
		"hasBeenArrested":             false,
	},
	AuthorStepProtectiveMeasures: {
		"protectiveMeasuresComplied":      false,
		"notifiedAboutProtectiveMeasures": false,
		"complyingWithProtectiveMeasures": false,
		"agreesWithQuestionnaire":         false,
	},
}

var authorRules = map[string]ruleSpec{
	AuthorStepVisitProcessInfo: {
		required: []validation.Required{
			{Field: "authorPresence", Message: "Presença do autor é obrigatória"},
			{Field: "attendanceType", Message: "Tipo de atendimento é obrigatório"},
			{Field: "visitingUnit", Message: "Unidade de visita é obrigatória"},
			{Field: "varaFamily", Message: "Vara familiar é obrigatória"},
			{Field: "numberProcess", Message: "Número do processo é obrigatório"},
			{Field: "visitDate", Message: "Data da visita é obrigatória"},
			{Field: "visitTime", Message: "Horário da visita é obrigatório"},
		},
		conditional: []conditionalSpec{
			{field: "otherAuthorPresence", trigger: "authorPresence", when: eqString("authorPresence", "Outro")},
			{field: "otherAttendanceType", trigger: "attendanceType", when: eqString("attendanceType", "Outro")},
		},
	},
	AuthorStepPersonalData: {
		required: []validation.Required{
			{Field: "authorName", Message: "Nome do autor é obrigatório"},
			{Field: "victimName", Message: "Nome da vítima é obrigatório"},
			{Field: "authorBirthDate", Message: "Data de nascimento do autor é obrigatória"},
			{Field: "authorRG", Message: "RG do autor é obrigatório"},
			{Field: "authorCPF", Message: "CPF do autor é obrigatório"},
			{Field: "authorGender", Message: "Sexo do autor é obrigatório"},
			{Field: "authorEthnicity", Message: "Etnia do autor é obrigatória"},
			{Field: "authorEducationLevel", Message: "Escolaridade do autor é obrigatória"},
			{Field: "authorMaritalStatus", Message: "Estado civil do autor é obrigatório"},
			{Field: "authorEmployed", Message: "Informação sobre trabalho do autor é obrigatória"},
			{Field: "authorIncome", Message: "Renda do autor é obrigatória"},
		},
	},
	AuthorStepAddressRelationship: {
		required: []validation.Required{
			{Field: "authorAddress", Message: "Endereço do autor é obrigatório"},
			{Field: "authorNeighborhood", Message: "Bairro do autor é obrigatório"},
			{Field: "authorMunicipality", Message: "Município do autor é obrigatório"},
			{Field: "relationshipWithVictim", Message: "Relacionamento com vítima é obrigatório"},
			{Field: "hasChildrenWithVictim", Message: "Informação sobre filhos com vítima é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "otherMunicipality", trigger: "authorMunicipality", when: eqString("authorMunicipality", "Outro")},
			{field: "numberOfChildrenWithVictim", trigger: "hasChildrenWithVictim", when: isTrue("hasChildrenWithVictim")},
		},
	},
	AuthorStepSubstanceBehavior: {
		required: []validation.Required{
			{Field: "substanceUse", Message: "Informação sobre uso de substâncias é obrigatória"},
			{Field: "hasCriminalRecord", Message: "Informação sobre antecedentes é obrigatória"},
			{Field: "hasBeenArrested", Message: "Informação sobre prisão é obrigatória"},
			{Field: "alcoholUse", Message: "Informação sobre uso de álcool é obrigatória"},
			{Field: "drugUse", Message: "Informação sobre uso de drogas é obrigatória"},
			{Field: "chemicalDependencyTreatment", Message: "Informação sobre tratamento é obrigatória"},
			{Field: "mentalDisorders", Message: "Informação sobre transtornos mentais é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "substanceDetails", trigger: "substanceUse", when: isTrue("substanceUse")},
			{field: "alcoholUseFrequency", trigger: "alcoholUse", when: isTrue("alcoholUse")},
			{field: "drugDetails", trigger: "drugUse", when: isTrue("drugUse")},
			{field: "drugUseFrequency", trigger: "drugUse", when: isTrue("drugUse")},
		},
	},
	AuthorStepProtectiveMeasures: {
		required: []validation.Required{
			{Field: "protectiveMeasuresComplied", Message: "Informação sobre cumprimento de medidas é obrigatória"},
			{Field: "lastContactDate", Message: "Data do último contato é obrigatória"},
			{Field: "contactFrequency", Message: "Frequência de contato é obrigatória"},
			{Field: "notifiedAboutProtectiveMeasures", Message: "Informação sobre notificação é obrigatória"},
			{Field: "agreesWithQuestionnaire", Message: "Concordância com questionário é obrigatória"},
			{Field: "residesNearVictim", Message: "Informação sobre proximidade residencial é obrigatória"},
			{Field: "lastContactWithVictimDate", Message: "Data do último contato com vítima é obrigatória"},
			{Field: "authorOrFamilyNearVictim", Message: "Informação sobre proximidade familiar é obrigatória"},
		},
		conditional: []conditionalSpec{
			{field: "nonComplianceDetails", trigger: "protectiveMeasuresComplied", when: isFalse("protectiveMeasuresComplied")},
			{field: "complyingWithProtectiveMeasures", trigger: "notifiedAboutProtectiveMeasures", when: isTrue("notifiedAboutProtectiveMeasures")},
		},
	},
}
