package presenter

import (
	"encoding/json"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

var defaultKeywordCatalog = []string{
	"신중한", "책임감 있는", "든든한", "리더십 있는", "신뢰할 수 있는", "진지한",
	"따뜻한", "공감하는", "배려심 깊은", "듣기 좋아하는", "이해심 많은", "친절한",
	"창의적인", "독특한", "예술적인", "상상력 풍부한", "영감을 주는", "개성 있는",
	"밝은", "에너지 넘치는", "긍정적인", "유머러스한", "활발한", "재미있는",
	"논리적인", "체계적인", "계획성 있는", "분석적인", "완벽주의적인",
	"자유로운", "모험적인", "유연한", "적응력 있는", "개방적인", "호기심 많은",
}

// DefaultContent is the stock content table written by the seed command
func DefaultContent() model.Content {
	keywords, _ := json.Marshal(defaultKeywordCatalog)

	return model.Content{
		"type_A_name":        "든든한 리더",
		"type_A_description": "책임감이 강하고 신뢰할 수 있는 리더십을 가진 사람입니다. 어려운 상황에서도 침착함을 유지하며 주변 사람들에게 안정감을 줍니다.",
		"type_B_name":        "따뜻한 상담가",
		"type_B_description": "공감 능력이 뛰어나고 다른 사람의 마음을 이해하는 데 특별한 재능이 있습니다. 따뜻한 관심과 배려로 주변을 감싸줍니다.",
		"type_C_name":        "창의적인 아티스트",
		"type_C_description": "독창적인 아이디어와 예술적 감각이 뛰어난 창조적인 사람입니다. 새로운 관점으로 세상을 바라보며 영감을 전달합니다.",
		"type_D_name":        "긍정의 에너자이저",
		"type_D_description": "항상 밝고 긍정적인 에너지로 주변을 활기차게 만드는 사람입니다. 어떤 상황에서도 희망과 웃음을 잃지 않습니다.",
		"type_E_name":        "치밀한 전략가",
		"type_E_description": "논리적이고 체계적인 사고로 문제를 해결하는 데 뛰어난 능력을 가진 사람입니다. 계획성 있고 신중한 접근을 중시합니다.",
		"type_F_name":        "자유로운 탐험가",
		"type_F_description": "새로운 경험과 모험을 추구하며 자유로운 영혼을 가진 사람입니다. 변화를 두려워하지 않고 유연하게 적응합니다.",

		"comment_A_B": "든든한 리더십과 따뜻한 배려심을 동시에 가진 완벽한 리더형입니다.",
		"comment_A_C": "안정적인 리더십에 창의적 감각까지 갖춘 독특한 매력의 소유자입니다.",
		"comment_A_D": "책임감 있는 리더십과 긍정적 에너지로 팀을 이끄는 천부적 리더입니다.",
		"comment_A_E": "리더십과 전략적 사고를 겸비한 완벽한 조직의 중심인물입니다.",
		"comment_A_F": "안정적인 리더십과 자유로운 사고의 조화가 돋보이는 유니크한 리더입니다.",
		"comment_B_C": "따뜻한 감성과 창의적 영감을 주는 예술가적 기질의 상담가입니다.",
		"comment_B_D": "따뜻한 배려와 긍정적 에너지로 주변을 치유하는 힐러형입니다.",
		"comment_B_E": "배려심과 논리적 사고를 겸비한 완벽한 조언자입니다.",
		"comment_B_F": "따뜻함과 자유로움이 조화된 독특한 매력의 소유자입니다.",
		"comment_C_D": "창의적 영감과 긍정적 에너지로 주변을 밝게 만드는 아티스트입니다.",
		"comment_C_E": "창의성과 논리성을 겸비한 완벽한 혁신가입니다.",
		"comment_C_F": "창의적이고 자유로운 영혼으로 끊임없이 새로운 가능성을 탐구합니다.",
		"comment_D_E": "긍정적 에너지와 전략적 사고로 목표를 달성하는 실행력의 달인입니다.",
		"comment_D_F": "긍정적이고 자유로운 에너지로 모험을 즐기는 탐험가입니다.",
		"comment_E_F": "논리적 사고와 자유로운 적응력을 겸비한 완벽한 전략가입니다.",

		model.KeyQ10Text:     "이 사람을 가장 잘 표현하는 키워드 3개를 골라주세요.",
		model.KeyKeywordList: string(keywords),
	}
}
