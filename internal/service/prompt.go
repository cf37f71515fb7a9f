package service

import "strings"

// 提示词模板固定不变，用户无法配置。
const (
	PromptPreamble = "<bos><start_of_turn>user\n" +
		"Answer the question based only on the following context and extract out a meaningful answer. " +
		"Please write in full sentences with correct spelling and punctuation. " +
		"If it makes sense use lists. " +
		"If the context doesn't contain the answer, just respond that you are unable to find an answer.\n" +
		"ARTICLE: "
	promptQuestion = "\nQUESTION: "
	promptSuffix   = "\n<end_of_turn>\n<start_of_turn>model\n\nANSWER:"
)

// BuildPrompt 将文档内容和问题填入模板。纯函数，无其他依赖。
func BuildPrompt(documentText, question string) string {
	var sb strings.Builder
	sb.Grow(len(PromptPreamble) + len(documentText) + len(promptQuestion) + len(question) + len(promptSuffix))
	sb.WriteString(PromptPreamble)
	sb.WriteString(documentText)
	sb.WriteString(promptQuestion)
	sb.WriteString(question)
	sb.WriteString(promptSuffix)
	return sb.String()
}
