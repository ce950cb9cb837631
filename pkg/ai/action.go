package ai

import (
	"errors"
	"fmt"
)

// Action names a rewrite the model performs on a document
type Action string

const (
	SmartFormat Action = "smart_format"
	Polish      Action = "polish"
	Summarize   Action = "summarize"
	Title       Action = "title"
	Emoji       Action = "emoji"
)

var Actions = []Action{SmartFormat, Polish, Summarize, Title, Emoji}

var ErrUnknownAction = errors.New("unknown action")

func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Appends reports whether the result is added after the document
// instead of replacing it.
func (a Action) Appends() bool {
	return a == Title || a == Summarize
}

func (a Action) label() string {
	switch a {
	case Title:
		return "标题"
	case Summarize:
		return "摘要"
	}
	return ""
}

// Apply merges the model's result into doc
func Apply(doc, result string, a Action) string {
	if !a.Appends() {
		return result
	}
	return doc + "\n\n---\n**AI 生成的" + a.label() + ":**\n\n" + result
}

const systemInstruction = "你是一位专业的微信公众号排版专家。你的目标是让文章结构清晰、易读且美观。"

const smartFormatPrompt = `你是一位拥有10年经验的资深排版师。请基于“内容解构”方法论，将以下纯文本转换为结构化、模块化的 Markdown 格式，以便直接生成精美的公众号文章。

**执行逻辑（请在内心完成分析，只输出最终 Markdown）：**

1.  **内容解构 (Deconstruction)**：
    *   **识别骨架**：区分引言、核心论点（H2）、支撑材料（数据/案例）、操作步骤、结论。
    *   **识别层级**：明确主标题 (#)、章节标题 (##)、子要点 (###)。

2.  **组件映射 (Mapping)**：
    *   **标题体系**：
        *   文章最开头必须有主标题 (#)。
        *   主要逻辑段落使用二级标题 (##)。
    *   **视觉容器 (引用块 >)**：
        *   将“核心观点”、“金句”、“总结性段落”放入引用块。
        *   将“案例背景”或“补充说明”放入引用块。
    *   **列表组件 (- 或 1.)**：
        *   凡是涉及“步骤”、“清单”、“要点并列”的内容，必须转换为列表。
    *   **强调体系 (**加粗**)**：
        *   **极度克制**：全篇文章仅加粗 **2-3 个** 最核心的“颠覆性结论”或“关键数据”。
        *   严禁大面积加粗，严禁加粗整句话。如果段落中没有绝对亮点，则不加粗。
    *   **分割线 (---)**：
        *   在引言结束处、主要章节之间添加分割线，增加呼吸感。

3.  **严格约束**：
    *   **保留原意**：严禁改写句子、严禁编造内容。只做结构化处理。
    *   **纯净输出**：直接输出 Markdown 内容，不要包含“好的”、“以下是排版结果”等任何废话。
    *   **Emoji 点缀**：在二级标题 (##) 的文字开头适当添加 1 个符合语境的 Emoji，增加视觉锚点。

**待排版文本：**
`

var prompts = map[Action]string{
	SmartFormat: smartFormatPrompt,
	Polish:      "请将以下文本重写，使其更加生动、流畅、专业，适合微信公众号读者的阅读习惯。修正错别字。保持 Markdown 格式（标题、列表等）不变。\n\n文本：\n",
	Summarize:   "请为以下文本提供一个简短、吸引人的摘要，适合作为微信公众号的“摘要”字段。字数限制在120字以内。\n\n文本：\n",
	Title:       "请为这篇文章生成 5 个吸引眼球、高点击率（但不要标题党）的标题。以无序列表形式返回。\n\n文本：\n",
	Emoji:       "请在以下文本的标题和关键段落中添加相关的 Emoji 表情，使其视觉上更具吸引力。不要过度使用。保持 Markdown 格式不变。\n\n文本：\n",
}

// Prompt returns the user prompt for running a on text
func (a Action) Prompt(text string) string {
	return prompts[a] + text
}
