package ports

import "github.com/bnema/mindscreen-cli/internal/domain"

type View interface {
	Alert(message string)
	Navigate(destination domain.Destination)
}

type AccountView interface {
	View
	SetUsername(name string)
}

type AuthView interface {
	View
	ShowWarning()
	HideWarning()
}

type SurveyView interface {
	AccountView
	ShowPage(index int)
}

type PipelineView interface {
	AccountView
	SetLoaderPhase(marker domain.LoaderMarker)
	SetLoadingMessage(message string)
	HideLoadingMessage()
	ShowImagePanel()
	ShowResult(narrative string, interpretation string)
}
