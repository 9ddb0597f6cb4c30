package explorer

import "context"

// SamplePapers returns the demonstration corpus. The survey paper's DOI is the
// one the dashboard asks recommendations for.
func SamplePapers() []Paper {
	return []Paper{
		{
			DOI:       "doi:example-paper-doi",
			Title:     "Quantum Machine Learning: A Survey",
			Authors:   []string{"Anonymous Researcher"},
			Content:   "A comprehensive exploration of quantum machine learning in contemporary research.",
			Citations: []string{"doi:demo-deep-learning-advances"},
			Concepts:  []string{"quantum computing", "machine learning"},
			Source:    "Demo Source",
		},
		{
			DOI:       "doi:demo-variational-quantum-circuits",
			Title:     "Variational Quantum Circuits for Classification",
			Authors:   []string{"Anonymous Researcher"},
			Content:   "Hybrid quantum-classical models trained with gradient descent for classification tasks.",
			Citations: []string{"doi:example-paper-doi"},
			Concepts:  []string{"quantum computing", "neural networks"},
			Source:    "Demo Source",
		},
		{
			DOI:       "doi:demo-deep-learning-advances",
			Title:     "Deep Learning Advances",
			Authors:   []string{"Anonymous Researcher"},
			Content:   "This paper discusses recent advances in deep learning and machine learning at scale.",
			Citations: []string{"Paper1", "Paper2"},
			Concepts:  []string{"deep learning", "neural networks", "machine learning"},
			Source:    "Demo Source",
		},
		{
			DOI:       "doi:demo-natural-language-processing",
			Title:     "Natural Language Processing",
			Authors:   []string{"Anonymous Researcher"},
			Content:   "Recent developments in NLP have shown transformers dominate language tasks.",
			Citations: []string{"Paper3", "Paper4"},
			Concepts:  []string{"NLP", "transformers"},
			Source:    "Demo Source",
		},
	}
}

// SeedSamples ingests SamplePapers into store and returns how many were written.
func SeedSamples(ctx context.Context, store *Store) (int, error) {
	n := 0
	for _, p := range SamplePapers() {
		if _, err := store.Ingest(ctx, p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
