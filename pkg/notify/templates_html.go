package notify

// Email bodies. Inline styles only: most mail clients strip <style> blocks.
// The confirmation body references the QR code twice, once through the
// cid: inline attachment and once as a base64 data URL fallback for clients
// that hide cid images.

const emailConfirmation = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#1a5276;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">SevaNet</h1>
      <p style="color:#aed6f1;margin:4px 0 0;font-size:13px;">Government Services Portal</p>
    </div>
    <div style="padding:24px;">
      <h2 style="color:#1a5276;margin-top:0;">✅ Appointment Confirmed</h2>
      <p>Dear {{.CitizenName}},</p>
      <p>Your appointment has been confirmed. Please find the details below:</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Service</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.ServiceName}}</strong></td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Department</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.Department}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Date</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.AppointmentDate}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Time</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.AppointmentTime}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Reference</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.BookingReference}}</strong></td></tr>
      </table>
      {{if .QRCodeData}}<div style="text-align:center;margin:24px 0;">
        <p style="color:#666;font-size:13px;">Show this QR code at the department counter:</p>
        <img src="cid:qr-code-image" alt="Appointment QR Code" width="200" height="200" style="display:block;margin:0 auto;" />
        <!--[if !mso]><!-->
        <img src="{{.QRCodeURL}}" alt="" width="0" height="0" style="display:none;" />
        <!--<![endif]-->
      </div>{{end}}
      <p>Please arrive 15 minutes early and bring all required documents.</p>
      <p style="margin-bottom:0;">- SevaNet Team</p>
    </div>
    <div style="background-color:#f4f4f4;padding:16px;text-align:center;font-size:12px;color:#999;">
      This is an automated message from <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>. Please do not reply.
    </div>
  </div>
</body>
</html>`

const emailReminder = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#1a5276;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">SevaNet</h1>
      <p style="color:#aed6f1;margin:4px 0 0;font-size:13px;">Government Services Portal</p>
    </div>
    <div style="padding:24px;">
      <h2 style="color:#b9770e;margin-top:0;">⏰ Appointment Reminder</h2>
      <p>Dear {{.CitizenName}},</p>
      <p>This is a reminder that your appointment is <strong>tomorrow</strong>:</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Service</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.ServiceName}}</strong></td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Department</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.Department}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Date</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.AppointmentDate}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Time</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.AppointmentTime}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Reference</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.BookingReference}}</strong></td></tr>
      </table>
      {{if .RequiredDocuments}}<div style="background-color:#fef9e7;border-left:4px solid #b9770e;padding:12px 16px;margin:16px 0;">
        <p style="margin:0 0 8px;font-weight:bold;">Required Documents Checklist</p>
        <ul style="margin:0;padding-left:20px;">
          {{range .RequiredDocuments}}<li style="padding:2px 0;">{{.}}</li>
          {{end}}
        </ul>
      </div>{{end}}
      <p>Please arrive 15 minutes early. If you cannot attend, cancel or reschedule at <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>.</p>
      <p style="margin-bottom:0;">- SevaNet Team</p>
    </div>
    <div style="background-color:#f4f4f4;padding:16px;text-align:center;font-size:12px;color:#999;">
      This is an automated message from <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>. Please do not reply.
    </div>
  </div>
</body>
</html>`

const emailDocumentApproved = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#1a5276;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">SevaNet</h1>
      <p style="color:#aed6f1;margin:4px 0 0;font-size:13px;">Government Services Portal</p>
    </div>
    <div style="padding:24px;">
      <h2 style="color:{{.StatusColor}};margin-top:0;">📄 Document Approved</h2>
      <p>Dear {{.CitizenName}},</p>
      <p>Your uploaded document has been reviewed and <strong style="color:{{.StatusColor}};">{{.StatusText}}</strong>.</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Document</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.DocumentName}}</strong></td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Reference</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.BookingReference}}</td></tr>
      </table>
      {{if .OfficerComments}}<div style="background-color:#f8f9fa;border-left:4px solid #1a5276;padding:12px 16px;margin:16px 0;">
        <p style="margin:0 0 4px;font-weight:bold;">Officer Comments</p>
        <p style="margin:0;">{{.OfficerComments}}</p>
      </div>{{end}}
      <p>No further action is required for this document. We look forward to seeing you at your appointment.</p>
      <p style="margin-bottom:0;">- SevaNet Team</p>
    </div>
    <div style="background-color:#f4f4f4;padding:16px;text-align:center;font-size:12px;color:#999;">
      This is an automated message from <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>. Please do not reply.
    </div>
  </div>
</body>
</html>`

const emailDocumentRejected = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#1a5276;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">SevaNet</h1>
      <p style="color:#aed6f1;margin:4px 0 0;font-size:13px;">Government Services Portal</p>
    </div>
    <div style="padding:24px;">
      <h2 style="color:{{.StatusColor}};margin-top:0;">📄 Document Rejected</h2>
      <p>Dear {{.CitizenName}},</p>
      <p>Your uploaded document has been reviewed and <strong style="color:{{.StatusColor}};">{{.StatusText}}</strong>.</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Document</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.DocumentName}}</strong></td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Reference</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.BookingReference}}</td></tr>
      </table>
      {{if .OfficerComments}}<div style="background-color:#fdedec;border-left:4px solid #dc3545;padding:12px 16px;margin:16px 0;">
        <p style="margin:0 0 4px;font-weight:bold;">Officer Comments</p>
        <p style="margin:0;">{{.OfficerComments}}</p>
      </div>{{end}}
      <p>Please sign in to <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a> and upload a corrected document before your appointment.</p>
      <p style="margin-bottom:0;">- SevaNet Team</p>
    </div>
    <div style="background-color:#f4f4f4;padding:16px;text-align:center;font-size:12px;color:#999;">
      This is an automated message from <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>. Please do not reply.
    </div>
  </div>
</body>
</html>`

const emailCancellation = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;">
    <div style="background-color:#1a5276;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">SevaNet</h1>
      <p style="color:#aed6f1;margin:4px 0 0;font-size:13px;">Government Services Portal</p>
    </div>
    <div style="padding:24px;">
      <h2 style="color:#dc3545;margin-top:0;">❌ Appointment Cancelled</h2>
      <p>Dear {{.CitizenName}},</p>
      <p>Your appointment has been cancelled:</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Service</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.ServiceName}}</strong></td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Department</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.Department}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Original Date</td><td style="padding:8px;border-bottom:1px solid #eee;">{{.AppointmentDate}}</td></tr>
        <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#666;">Reference</td><td style="padding:8px;border-bottom:1px solid #eee;"><strong>{{.BookingReference}}</strong></td></tr>
      </table>
      {{if .CancellationReason}}<div style="background-color:#fdedec;border-left:4px solid #dc3545;padding:12px 16px;margin:16px 0;">
        <p style="margin:0 0 4px;font-weight:bold;">Reason</p>
        <p style="margin:0;">{{.CancellationReason}}</p>
      </div>{{end}}
      <p>You can book a new appointment at any time via <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>.</p>
      <p style="margin-bottom:0;">- SevaNet Team</p>
    </div>
    <div style="background-color:#f4f4f4;padding:16px;text-align:center;font-size:12px;color:#999;">
      This is an automated message from <a href="https://sevanet.gov.lk" style="color:#1a5276;">sevanet.gov.lk</a>. Please do not reply.
    </div>
  </div>
</body>
</html>`
