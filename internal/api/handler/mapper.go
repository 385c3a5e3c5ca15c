package handler

import (
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

func toLabelInput(r labelRequest) ports.LabelInput {
	return ports.LabelInput{
		Selector: ports.LabelSelector{
			PackageID: r.PackageID,
			Reference: r.Reference,
			Waybill:   r.Waybill,
		},
		SessionType:     r.SessionType,
		Sender:          r.Sender,
		OutputDocFormat: r.OutputDocFormat,
		DocPageFormat:   r.DocPageFormat,
		OutputLabelType: r.OutputLabelType,
		LabelVariant:    r.LabelVariant,
	}
}

func toRemoteResponse(resp *ports.Response) remoteResponse {
	return remoteResponse{Operation: string(resp.Operation), Result: resp.Body}
}
