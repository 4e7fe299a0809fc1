package corpus

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"aiforall/internal/domain"
)

// reference is the built-in knowledge base. Never written after init.
var reference = []domain.Document{
	{ID: 1, Title: "Python Basics", Content: "Python é uma linguagem de programação interpretada, de alto nível e tipagem dinâmica. Criada por Guido van Rossum em 1991. É amplamente usada em data science, machine learning e desenvolvimento web.", Tags: []string{"python", "programação", "linguagem"}},
	{ID: 2, Title: "JavaScript", Content: "JavaScript é a linguagem da web. Roda no navegador e no servidor (Node.js). É essencial para front-end, back-end e aplicações full-stack. Criada por Brendan Eich em 1995.", Tags: []string{"javascript", "web", "programação"}},
	{ID: 3, Title: "Machine Learning", Content: "Machine Learning é um subcampo de IA onde sistemas aprendem padrões a partir de dados. Os 3 tipos principais são: supervisionado (com labels), não-supervisionado (sem labels) e por reforço (reward).", Tags: []string{"ml", "ia", "dados"}},
	{ID: 4, Title: "Deep Learning", Content: "Deep Learning usa redes neurais profundas com muitas camadas. Revolucionou visão computacional, NLP e geração de conteúdo. Exemplos: CNNs para imagens, Transformers para texto.", Tags: []string{"deep learning", "redes neurais", "ia"}},
	{ID: 5, Title: "Transformers", Content: "Transformers são uma arquitetura de rede neural baseada em self-attention. Introduzidos no paper \"Attention is All You Need\" (2017). Base do GPT, BERT, T5 e todos os LLMs modernos.", Tags: []string{"transformers", "attention", "nlp"}},
	{ID: 6, Title: "LLMs", Content: "Large Language Models são modelos de linguagem treinados em bilhões de tokens. GPT-4, Claude, Llama e Gemini são exemplos. Usam a arquitetura Transformer e geram texto autoregressivamente.", Tags: []string{"llm", "gpt", "ia"}},
	{ID: 7, Title: "Embeddings", Content: "Embeddings são representações vetoriais de palavras ou documentos. Palavras similares ficam próximas no espaço vetorial. Modelos como Word2Vec, GloVe e sentence-transformers geram embeddings.", Tags: []string{"embeddings", "vetores", "nlp"}},
	{ID: 8, Title: "Vector Databases", Content: "Vector databases armazenam e buscam embeddings eficientemente. Exemplos: Pinecone, Weaviate, Chroma, FAISS, Qdrant. Usam algoritmos como HNSW e IVF para busca aproximada de vizinhos mais próximos (ANN).", Tags: []string{"vector db", "banco de dados", "embeddings"}},
	{ID: 9, Title: "Prompt Engineering", Content: "Prompt Engineering é a arte de formular instruções eficazes para LLMs. Técnicas incluem: zero-shot, few-shot, chain-of-thought, role prompting e output estruturado.", Tags: []string{"prompt", "engenharia", "llm"}},
	{ID: 10, Title: "Fine-tuning", Content: "Fine-tuning é o processo de continuar treinando um modelo pré-treinado em dados específicos do seu domínio. Mais barato que treinar do zero. LoRA e QLoRA são técnicas eficientes de fine-tuning.", Tags: []string{"fine-tuning", "treinamento", "ia"}},
	{ID: 11, Title: "RAG", Content: "RAG (Retrieval-Augmented Generation) combina busca em documentos com geração de texto por LLMs. Primeiro busca documentos relevantes, depois os usa como contexto para gerar respostas precisas e atualizadas.", Tags: []string{"rag", "retrieval", "geração"}},
	{ID: 12, Title: "Agents", Content: "AI Agents são sistemas que percebem o ambiente, tomam decisões e executam ações. Usam LLMs como \"cérebro\" e ferramentas externas (APIs, bancos, buscadores) para resolver tarefas complexas autonomamente.", Tags: []string{"agents", "agentes", "ia"}},
}

// Reference returns a copy of the built-in knowledge base.
func Reference() []domain.Document {
	return Clone(reference)
}

// Clone deep-copies docs so callers cannot reach shared tag slices.
func Clone(docs []domain.Document) []domain.Document {
	out := make([]domain.Document, len(docs))
	for i, d := range docs {
		d.Tags = append([]string(nil), d.Tags...)
		out[i] = d
	}
	return out
}

type file struct {
	Documents []domain.Document `yaml:"documents"`
}

// LoadFile reads a YAML document list of the form
//
//	documents:
//	  - id: 1
//	    title: ...
//	    content: ...
//	    tags: [a, b]
func LoadFile(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	if len(f.Documents) == 0 {
		return nil, errors.New("corpus file has no documents")
	}
	return f.Documents, nil
}
