package scenario

import (
	"gallery-service/internal/adapters/primary/http/dto"
	"gallery-service/internal/core/domain"
	"gallery-service/internal/core/services"
)

const (
	// MockClonePath is the base localPath of synthetic exhibits.
	MockClonePath = "clone/path"
	// MockRevision is the revision reported by synthetic exhibits.
	MockRevision = "revision-id"
)

// Fixtures holds the default replies a scenario starts from. Build one per
// scenario with DefaultFixtures; nothing here is shared between scenarios.
type Fixtures struct {
	Gallery          dto.GalleryReply
	Exhibits         dto.ExhibitsReply
	NiceExhibits     []dto.Exhibit
	EdgeCaseExhibits []dto.Exhibit
}

func DefaultFixtures() Fixtures {
	nice := MockExhibits(NiceExhibitSources())
	return Fixtures{
		Gallery: dto.GalleryReply{
			Title:                      "Gallery",
			APIVersion:                 domain.APIVersion,
			ExhibitsConfigured:         true,
			HideGalleryWithoutExhibits: false,
		},
		Exhibits:         dto.ExhibitsReply{Exhibits: cloneExhibits(nice)},
		NiceExhibits:     nice,
		EdgeCaseExhibits: MockExhibits(EdgeCaseExhibitSources()),
	}
}

// MockExhibit turns a source into a not-yet-cloned exhibit with a
// placeholder revision. id must be unique within the batch.
func MockExhibit(src domain.ExhibitSource, id int) dto.Exhibit {
	e := services.BuildExhibit(src, id, MockClonePath)
	e.State.Revision = MockRevision
	return dto.ToExhibit(e)
}

// MockExhibits builds a batch; ids are positions in srcs.
func MockExhibits(srcs []domain.ExhibitSource) []dto.Exhibit {
	exhibits := make([]dto.Exhibit, 0, len(srcs))
	for i, src := range srcs {
		exhibits = append(exhibits, MockExhibit(src, i))
	}
	return exhibits
}

func NiceExhibitSources() []domain.ExhibitSource {
	return []domain.ExhibitSource{
		{
			Git:         "https://github.com/numba/nvidia-cuda-tutorial.git",
			Homepage:    "https://github.com/numba/nvidia-cuda-tutorial",
			Title:       "Numba for CUDA",
			Description: "Nvidia contributed CUDA tutorial for Numba",
		},
		{
			Git:         "https://github.com/yunjey/pytorch-tutorial.git",
			Homepage:    "https://github.com/yunjey/pytorch-tutorial",
			Title:       "PyTorch Tutorial",
			Description: "PyTorch Tutorial for Deep Learning Researchers",
			Icon:        strPtr("https://github.com/yunjey/pytorch-tutorial/raw/master/logo/pytorch_logo_2018.svg"),
		},
		{
			Git:         "https://github.com/jupyter-widgets/tutorial.git",
			Homepage:    "https://github.com/jupyter-widgets/tutorial",
			Title:       "Jupyter Widgets Tutorial",
			Description: "The Jupyter Widget Ecosystem",
		},
		{
			Git:         "https://github.com/amueller/scipy-2018-sklearn.git",
			Homepage:    "https://github.com/amueller/scipy-2018-sklearn",
			Title:       "Scikit-learn Tutorial 2018",
			Description: "SciPy 2018 Scikit-learn Tutorial",
		},
		{
			Git:         "https://github.com/nebari-dev/nebari.git",
			Homepage:    "https://github.com/nebari-dev/nebari",
			Title:       "Nebari",
			Description: "Nebari - your open source data science platform",
			Icon:        strPtr("https://raw.githubusercontent.com/nebari-dev/nebari-design/main/logo-mark/horizontal/Nebari-Logo-Horizontal-Lockup.svg"),
		},
		{
			Git:         "https://github.com/jupyterlab/jupyterlab.git",
			Homepage:    "https://github.com/jupyterlab/jupyterlab/",
			Title:       "JupyterLab",
			Description: "JupyterLab is a highly extensible, feature-rich notebook authoring application and editing environment, and is a part of Project Jupyter",
			Icon:        strPtr("https://raw.githubusercontent.com/jupyterlab/jupyterlab/main/packages/ui-components/style/icons/jupyter/jupyter.svg"),
		},
	}
}

func EdgeCaseExhibitSources() []domain.ExhibitSource {
	return []domain.ExhibitSource{
		{
			Git:      "https://github.com/krassowski/example-private-repository.git",
			Homepage: "https://github.com/krassowski/example-private-repository/",
			Title:    "Private repository",
		},
		{
			Git:   "https://github.com/jupyter-widgets/tutorial.git",
			Title: "Example without description",
		},
		{
			Git:         "https://gitlab.gnome.org/GNOME/atomix.git",
			Title:       "GNOME atomix",
			Description: "Example without icon",
		},
		{
			Git:         "https://github.com/nebari-dev/nebari.git",
			Homepage:    "https://github.com/nebari-dev/nebari",
			Title:       "Empty icon",
			Description: "Empty icon should show social card for GitHub repos",
			Icon:        strPtr(""),
		},
	}
}

func strPtr(s string) *string { return &s }

func cloneExhibits(exhibits []dto.Exhibit) []dto.Exhibit {
	if exhibits == nil {
		return nil
	}
	out := make([]dto.Exhibit, len(exhibits))
	copy(out, exhibits)
	return out
}
