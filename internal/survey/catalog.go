package survey

import "github.com/pharmaciefficace/feedback/models"

// Survey type names. The customer flow always runs the client survey;
// staff pick one of the staff surveys after entering the access code.
const (
	TypeClient            = "client"
	TypeWorkingConditions = "conditions_travail"
	TypeManagement        = "management"
)

// Survey identifiers in the static catalog.
const (
	surveyIDClient            int64 = 1
	surveyIDWorkingConditions int64 = 2
	surveyIDManagement        int64 = 3
)

func weight(v float64) *float64 { return &v }

// binaryOptions builds the standard Oui/Non option pair. Base is the
// option ID of "Oui"; "Non" takes base+1.
func binaryOptions(base int64) []models.Option {
	return []models.Option{
		{OptionID: base, Label: "Oui", Order: 1, Weight: weight(1)},
		{OptionID: base + 1, Label: "Non", Order: 2, Weight: weight(0)},
	}
}

// ratingOptions builds a five-step satisfaction scale. Weights double as
// the star count of each step.
func ratingOptions(base int64) []models.Option {
	labels := []string{"Très insatisfait", "Insatisfait", "Neutre", "Satisfait", "Très satisfait"}
	options := make([]models.Option, 0, len(labels))
	for i, label := range labels {
		options = append(options, models.Option{
			OptionID: base + int64(i),
			Label:    label,
			Order:    i + 1,
			Weight:   weight(float64(i + 1)),
		})
	}
	return options
}

// clientSurvey is the customer questionnaire: ten closed questions followed
// by one open suggestion field.
var clientSurvey = models.Survey{
	SurveyID: surveyIDClient,
	Type:     TypeClient,
	Title:    "Votre expérience dans cette pharmacie",
	Questions: []models.Question{
		{
			QuestionID: 1, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeBinary,
			Label:       "Avez-vous trouvé le médicament ou le produit que vous cherchiez ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     binaryOptions(101),
		},
		{
			QuestionID: 2, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeBinary,
			Label:       "Le pharmacien vous a-t-il conseillé sur l'utilisation du médicament ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     binaryOptions(103),
		},
		{
			QuestionID: 3, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeList,
			Label:       "Comment jugez-vous le temps d'attente avant d'être servi ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options: []models.Option{
				{OptionID: 105, Label: "Très court", Order: 1, Weight: weight(4)},
				{OptionID: 106, Label: "Acceptable", Order: 2, Weight: weight(3)},
				{OptionID: 107, Label: "Long", Order: 3, Weight: weight(2)},
				{OptionID: 108, Label: "Très long", Order: 4, Weight: weight(1)},
			},
		},
		{
			QuestionID: 4, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeRating,
			Label:       "Comment évaluez-vous l'accueil du personnel ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     ratingOptions(109),
		},
		{
			QuestionID: 5, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeBinary,
			Label:       "Les prix pratiqués vous semblent-ils raisonnables ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     binaryOptions(114),
		},
		{
			QuestionID: 6, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeRating,
			Label:       "Comment évaluez-vous la propreté et l'organisation de la pharmacie ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     ratingOptions(116),
		},
		{
			QuestionID: 7, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeBinary,
			Label:       "Avez-vous obtenu toutes les informations que vous souhaitiez ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     binaryOptions(121),
		},
		{
			QuestionID: 8, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeRating,
			Label:       "Comment évaluez-vous la disponibilité des produits ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     ratingOptions(123),
		},
		{
			QuestionID: 9, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeBinary,
			Label:       "Recommanderiez-vous cette pharmacie à un proche ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     binaryOptions(128),
		},
		{
			QuestionID: 10, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeRating,
			Label:       "Quelle est votre satisfaction globale ?",
			Kind:        models.QuestionKindClosed,
			TargetGroup: TypeClient,
			Options:     ratingOptions(130),
		},
		{
			QuestionID: 11, SurveyID: surveyIDClient, OptionTypeID: models.OptionTypeList,
			Label:       "Avez-vous des suggestions pour améliorer le service ?",
			Kind:        models.QuestionKindOpen,
			TargetGroup: TypeClient,
		},
	},
}

// staffSurveys holds the questionnaires reachable behind the staff access
// code, keyed by survey type.
var staffSurveys = map[string]models.Survey{
	TypeWorkingConditions: {
		SurveyID: surveyIDWorkingConditions,
		Type:     TypeWorkingConditions,
		Title:    "Conditions de travail",
		Questions: []models.Question{
			{
				QuestionID: 201, SurveyID: surveyIDWorkingConditions, OptionTypeID: models.OptionTypeRating,
				Label:       "Comment évaluez-vous vos conditions de travail générales ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     ratingOptions(301),
			},
			{
				QuestionID: 202, SurveyID: surveyIDWorkingConditions, OptionTypeID: models.OptionTypeBinary,
				Label:       "Disposez-vous du matériel nécessaire pour bien faire votre travail ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     binaryOptions(306),
			},
			{
				QuestionID: 203, SurveyID: surveyIDWorkingConditions, OptionTypeID: models.OptionTypeRating,
				Label:       "Comment évaluez-vous votre charge de travail ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     ratingOptions(308),
			},
			{
				QuestionID: 204, SurveyID: surveyIDWorkingConditions, OptionTypeID: models.OptionTypeBinary,
				Label:       "Vos horaires de travail sont-ils respectés ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     binaryOptions(313),
			},
			{
				QuestionID: 205, SurveyID: surveyIDWorkingConditions, OptionTypeID: models.OptionTypeList,
				Label:       "Que faudrait-il améliorer en priorité ?",
				Kind:        models.QuestionKindOpen,
				TargetGroup: "personnel",
			},
		},
	},
	TypeManagement: {
		SurveyID: surveyIDManagement,
		Type:     TypeManagement,
		Title:    "Relations avec la direction",
		Questions: []models.Question{
			{
				QuestionID: 211, SurveyID: surveyIDManagement, OptionTypeID: models.OptionTypeRating,
				Label:       "Comment évaluez-vous la communication avec votre direction ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     ratingOptions(315),
			},
			{
				QuestionID: 212, SurveyID: surveyIDManagement, OptionTypeID: models.OptionTypeBinary,
				Label:       "Vos remarques sont-elles prises en compte ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     binaryOptions(320),
			},
			{
				QuestionID: 213, SurveyID: surveyIDManagement, OptionTypeID: models.OptionTypeRating,
				Label:       "Comment évaluez-vous la reconnaissance de votre travail ?",
				Kind:        models.QuestionKindClosed,
				TargetGroup: "personnel",
				Options:     ratingOptions(322),
			},
			{
				QuestionID: 214, SurveyID: surveyIDManagement, OptionTypeID: models.OptionTypeList,
				Label:       "Qu'attendez-vous de votre direction ?",
				Kind:        models.QuestionKindOpen,
				TargetGroup: "personnel",
			},
		},
	},
}

// ClientSurvey returns the customer questionnaire.
func ClientSurvey() models.Survey {
	return clientSurvey
}

// StaffSurvey returns the staff questionnaire for the given type.
func StaffSurvey(surveyType string) (models.Survey, bool) {
	s, ok := staffSurveys[surveyType]
	return s, ok
}

// StaffSurveyTypes lists the available staff survey types in a stable order.
func StaffSurveyTypes() []string {
	return []string{TypeWorkingConditions, TypeManagement}
}
