package summarizer

import "fmt"

// Template summaries are pure functions of (festival_name, district). The
// Telugu text is a parallel template, not a translation of the English one.

// EnglishTemplate renders the five-sentence English summary.
func EnglishTemplate(festivalName, district string) string {
	return fmt.Sprintf(`%s is a traditional festival celebrated in %s district of Telangana, India.

This festival holds great cultural and religious significance for the local community.

Traditional rituals, prayers, and community participation mark the celebrations.

This festival showcases Telangana's rich cultural heritage and strengthens community bonds.

Local traditions and religious practices are observed during this important celebration.`, festivalName, district)
}

// TeluguTemplate renders the parallel five-sentence Telugu summary.
func TeluguTemplate(festivalName, district string) string {
	return fmt.Sprintf(`%s తెలంగాణలో %s జిల్లాలో జరుపుకునే సాంప్రదాయ పండుగ.

ఈ పండుగ స్థానిక సమాజానికి గొప్ప సాంస్కృతిక మరియు మత ప్రాముఖ్యతను కలిగి ఉంది.

సాంప్రదాయ ఆచారాలు, ఆరాధనలు మరియు సమాజ పాల్గొనేతో జరుపుకుంటారు.

ఈ పండుగ తెలంగాణ సంపన్న సాంస్కృతిక వారసత్వాన్ని ప్రదర్శిస్తుంది మరియు సమాజ బంధాలను బలపరుస్తుంది.

స్థానిక సంప్రదాయాలు మరియు మత ఆచారాలు ఈ ముఖ్యమైన వేడుకలో పాటించబడతాయి.`, festivalName, district)
}
