package analysis

// FallbackAssessment — отчёт по умолчанию, когда оценка LLM недоступна.
// KeywordAnalysis не заполнен: в отчёт попадёт локальный анализ.
func FallbackAssessment() Assessment {
	return Assessment{
		OverallScore:    65,
		SkillsScore:     70,
		ExperienceScore: 60,
		FormatScore:     65,
		KeyFindings: []KeyFinding{
			{Text: `Your <span class="font-medium">technical skills</span> match many requirements.`, Type: FindingPositive},
			{Text: `Consider adding more <span class="font-medium">quantifiable achievements</span>.`, Type: FindingNegative},
			{Text: `Resume structure is <span class="font-medium">generally good</span> but could use improvement.`, Type: FindingNegative},
			{Text: `Your <span class="font-medium">experience section</span> is relevant to the position.`, Type: FindingPositive},
			{Text: `Missing some <span class="font-medium">key terms</span> from the job description.`, Type: FindingNegative},
		},
		DetailedFeedback: DetailedFeedback{
			Overall:    "<p>Your resume demonstrates relevant technical skills, but there are opportunities for improvement in formatting and keyword usage.</p>",
			Skills:     "<p>Your technical skills align with many of the job requirements. Consider adding the missing keywords identified in the analysis.</p>",
			Experience: "<p>Your experience section is relevant but could be enhanced by adding more quantifiable achievements.</p>",
			Education:  "<p>Education section meets the basic requirements for this position.</p>",
			Format:     "<p>The resume format is readable but could be optimized for ATS systems with a cleaner structure.</p>",
		},
	}
}
